package models

// GenerateRequest /api/generate 的请求体
type GenerateRequest struct {
	Requirement string `json:"requirement"`
	SessionID   string `json:"session_id"`
}

// DocumentLink 单个产物的可获取位置
//
// 本地投递时 DownloadURL 指向 /files 下载路径；
// 外部文档服务投递时 ID 和 URL 指向第三方文档。
type DocumentLink struct {
	Title       string `json:"title"`
	Filename    string `json:"filename"`
	DownloadURL string `json:"download_url"`
	ID          string `json:"id,omitempty"`
}

// GenerateResult /api/generate 的响应体
type GenerateResult struct {
	Summary             string       `json:"summary"`
	TotalTestCases      int          `json:"total_test_cases"`
	ExploratoryCharters int          `json:"exploratory_charters"`
	Coverage            string       `json:"coverage"`
	TestPlan            DocumentLink `json:"test_plan"`
	TestCases           DocumentLink `json:"test_cases"`
	ExploratoryTesting  DocumentLink `json:"exploratory_testing"`
}

// HealthResponse /api/health 的响应体
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
}

// ErrorResponse 通用错误响应，不暴露内部错误细节
type ErrorResponse struct {
	Error string `json:"error"`
}
