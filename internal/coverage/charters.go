package coverage

// CharterTemplate is one entry in the exploratory charter catalog. Area feeds
// the ETC_<AREA>_<NNN> identifier prefix; Mission contains a single %s
// substituted with the feature name.
type CharterTemplate struct {
	Area            string
	Title           string
	Priority        string
	DurationMinutes int
	Mission         string
	FocusAreas      []string
	Risks           []string
	TestIdeas       []string
	DataVariations  []string
}

// CharterCatalog returns the fixed charter templates in emission order.
func CharterCatalog() []CharterTemplate {
	return []CharterTemplate{
		{
			Area:            "VALIDATION",
			Title:           "Input Validation Edge Cases",
			Priority:        "High",
			DurationMinutes: 90,
			Mission:         "Explore input validation boundaries and edge cases of %s to discover validation gaps.",
			FocusAreas: []string{
				"Special characters in all input fields (Unicode, emojis, symbols)",
				"Copy-paste behavior from different sources",
				"Very long inputs (1000+ characters)",
				"Field combinations that might break validation",
				"Browser autofill interaction",
			},
			Risks: []string{
				"Validation bypasses",
				"Inconsistent error messages",
				"UI breaking with unexpected input",
				"Data truncation without warning",
				"Security vulnerabilities in input handling",
			},
			TestIdeas: []string{
				"Paste rich text and observe what survives",
				"Submit the same form from two tabs",
			},
			DataVariations: []string{
				"Zero-width and right-to-left Unicode characters",
				"Whitespace-only values",
			},
		},
		{
			Area:            "SECURITY",
			Title:           "Security Vulnerability Exploration",
			Priority:        "Critical",
			DurationMinutes: 120,
			Mission:         "Attempt to break the security measures of %s and find vulnerabilities.",
			FocusAreas: []string{
				"SQL injection in all input fields",
				"XSS payloads in text fields",
				"CSRF attack vectors",
				"Session hijacking attempts",
				"Authentication bypass techniques",
				"Authorization boundary testing",
			},
			Risks: []string{
				"Unescaped user input",
				"Missing authentication checks",
				"Exposed sensitive data",
				"Weak session management",
				"Missing security headers",
			},
		},
		{
			Area:            "COMPAT",
			Title:           "Cross-Browser Compatibility Edge Cases",
			Priority:        "Medium",
			DurationMinutes: 90,
			Mission:         "Find browser-specific issues and rendering problems in %s.",
			FocusAreas: []string{
				"Date picker behavior across browsers",
				"Form validation differences",
				"JavaScript console errors",
				"CSS rendering issues",
				"Browser autofill conflicts",
				"Private/incognito mode behavior",
			},
			Risks: []string{
				"Visual inconsistencies",
				"Functional breaks in specific browsers",
				"Performance differences",
				"Storage/cookie issues",
			},
		},
		{
			Area:            "MOBILE",
			Title:           "Mobile User Experience Testing",
			Priority:        "High",
			DurationMinutes: 90,
			Mission:         "Test mobile usability and responsive design edge cases of %s.",
			FocusAreas: []string{
				"Touch target sizes",
				"Virtual keyboard behavior",
				"Orientation changes",
				"Zooming and pinching",
				"Scroll behavior",
				"Network interruptions",
			},
			Risks: []string{
				"Difficult-to-tap elements",
				"Keyboard covering inputs",
				"Layout breaking on orientation change",
				"Poor touch responsiveness",
			},
		},
		{
			Area:            "PERF",
			Title:           "Performance Under Load",
			Priority:        "High",
			DurationMinutes: 90,
			Mission:         "Test %s behavior under stress and high load.",
			FocusAreas: []string{
				"Multiple rapid submissions",
				"Concurrent user actions",
				"Large data volumes",
				"Slow network simulation",
				"Memory leaks over time",
			},
			Risks: []string{
				"Slow response times",
				"System crashes",
				"Data corruption",
				"Memory consumption",
				"Resource exhaustion",
			},
			DataVariations: []string{
				"Payloads near the size limit",
				"Hundreds of rows in tabular inputs",
			},
		},
		{
			Area:            "RECOVERY",
			Title:           "Error Recovery Scenarios",
			Priority:        "High",
			DurationMinutes: 60,
			Mission:         "Test how well %s handles and recovers from errors.",
			FocusAreas: []string{
				"Network interruptions during submission",
				"Browser crash and recovery",
				"Back button after errors",
				"Multiple error conditions simultaneously",
				"Error message helpfulness",
			},
			Risks: []string{
				"Data loss",
				"Unclear error messages",
				"Poor recovery workflows",
				"System left in inconsistent state",
			},
		},
	}
}
