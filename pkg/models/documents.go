package models

import "time"

// Technique 测试设计技术标签，附加在每个生成的测试用例上
type Technique string

const (
	TechniqueEquivalencePartitioning Technique = "Equivalence Partitioning"
	TechniqueBoundaryValueAnalysis   Technique = "Boundary Value Analysis"
	TechniqueDecisionTable           Technique = "Decision Table"
	TechniqueStateTransition         Technique = "State Transition"
	TechniquePositive                Technique = "Positive"
	TechniqueNegative                Technique = "Negative"
	TechniqueSecurity                Technique = "Security"
	TechniquePerformance             Technique = "Performance"
	TechniqueAccessibility           Technique = "Accessibility"
	TechniqueCompatibility           Technique = "Compatibility"
)

// Priority 测试用例优先级
type Priority string

const (
	PriorityCritical Priority = "Critical"
	PriorityHigh     Priority = "High"
	PriorityMedium   Priority = "Medium"
	PriorityLow      Priority = "Low"
)

// TestCaseRow 测试用例表中的一行
//
// ActualResult、PassFail 和 BugID 是执行阶段填写的占位字段，
// 生成器永远不会填充它们。
type TestCaseRow struct {
	ID              string
	Description     string
	Category        string
	Priority        Priority
	Preconditions   string
	TestData        string
	Steps           []string
	ExpectedResult  string
	ActualResult    string
	PassFail        string
	BugID           string
	Technique       Technique
	TechniqueDetail string
	RequirementRef  string
}

// TechniqueLabel returns the value written to the Test Design Technique
// column: the detailed variant when the rule provides one, otherwise the
// plain technique tag.
func (r *TestCaseRow) TechniqueLabel() string {
	if r.TechniqueDetail != "" {
		return r.TechniqueDetail
	}
	return string(r.Technique)
}

// Charter 探索性测试章程，与测试用例表相互独立
type Charter struct {
	ID              string
	Title           string
	Priority        Priority
	DurationMinutes int
	Mission         string
	FocusAreas      []string
	Risks           []string
	TestIdeas       []string
	DataVariations  []string
}

// PlanSection 测试计划中的一个命名章节，章节顺序固定
type PlanSection struct {
	Name string
	Body string
}

// DocumentSet 一次需求提交生成的全部文档：
// 一份测试计划、一张测试用例表、一组探索性测试章程。
// 创建后不再修改，序列化完成即丢弃。
type DocumentSet struct {
	SessionID   string
	FeatureName string
	Requirement string
	GeneratedAt time.Time
	Plan        []PlanSection
	TestCases   []TestCaseRow
	Charters    []Charter
}
