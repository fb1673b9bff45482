package core

// UserInfo is the public profile record returned by the backend. Sensitive
// fields never reach the client.
type UserInfo struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	Nickname  string `json:"nickname"`
	AvatarURL string `json:"avatarUrl"`
	CreatedAt string `json:"createdAt"`
}

// LoginResult is the payload of a successful login: the bearer token plus the
// profile of the user it belongs to.
type LoginResult struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

// RegisterRequest carries the fields submitted on sign-up. Nickname is optional.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Nickname string `json:"nickname,omitempty"`
}

// LoginRequest carries the credentials submitted on login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// GenerateRequest describes one script generation run.
type GenerateRequest struct {
	VideoType       string `json:"videoType"`
	ThemeInput      string `json:"themeInput"`
	StylePreference string `json:"stylePreference,omitempty"`
}

// GenerateResult is returned by the generate endpoint: the new generation
// session and the version summaries produced for it.
type GenerateResult struct {
	SessionID string         `json:"sessionId"`
	Versions  []VersionBrief `json:"versions"`
}

// VersionBrief is the list-view summary of one generated script version.
// IsSelected uses the backend's 1/0 convention.
type VersionBrief struct {
	VersionID    string  `json:"versionId"`
	VersionIndex int     `json:"versionIndex"`
	Title        string  `json:"title"`
	Preview      Preview `json:"preview"`
	IsSelected   int     `json:"isSelected"`
}

// Preview summarizes a version for list rendering.
type Preview struct {
	FirstScene string `json:"firstScene"`
	WordCount  int    `json:"wordCount"`
	SceneCount int    `json:"sceneCount"`
}

// ScriptContent is the structured body of a script version.
type ScriptContent struct {
	Title             string        `json:"title"`
	AlternativeTitles []string      `json:"alternativeTitles"`
	Scenes            []Scene       `json:"scenes"`
	VideoElements     VideoElements `json:"videoElements"`
	EndingCTA         []string      `json:"endingCTA"`
}

// Scene is a single storyboard entry within a script.
type Scene struct {
	TimeRange         string `json:"timeRange"`
	VisualDescription string `json:"visualDescription"`
	Voiceover         string `json:"voiceover"`
	Subtitle          string `json:"subtitle"`
}

// VideoElements carries production suggestions attached to a script.
type VideoElements struct {
	BGMStyle         string `json:"bgmStyle"`
	ShootingLocation string `json:"shootingLocation"`
	Effects          string `json:"effects"`
}

// ScriptDetail is the full record of one script version.
type ScriptDetail struct {
	ID           string        `json:"id"`
	SessionID    string        `json:"sessionId"`
	VersionIndex int           `json:"versionIndex"`
	Title        string        `json:"title"`
	Content      ScriptContent `json:"content"`
	IsSelected   bool          `json:"isSelected"`
	WordCount    int           `json:"wordCount"`
	SceneCount   int           `json:"sceneCount"`
	CreatedAt    string        `json:"createdAt"`
}

// UpdateScriptRequest carries the edited content for a version.
type UpdateScriptRequest struct {
	Content ScriptContent `json:"content"`
}

// UpdateResult acknowledges a version update.
type UpdateResult struct {
	VersionID string `json:"versionId"`
	UpdatedAt string `json:"updatedAt"`
}

// HistoryQuery selects a page of past generation sessions. Zero values are
// omitted so the backend applies its own defaults.
type HistoryQuery struct {
	Page      int
	PageSize  int
	VideoType string
}

// SessionSummary is one row of the generation history.
type SessionSummary struct {
	ID              string `json:"id"`
	VideoType       string `json:"videoType"`
	ThemeInput      string `json:"themeInput"`
	StylePreference string `json:"stylePreference"`
	CreatedAt       string `json:"createdAt"`
}

// HistoryPage is a page of generation sessions.
type HistoryPage struct {
	Total    int              `json:"total"`
	Page     int              `json:"page"`
	PageSize int              `json:"pageSize"`
	Sessions []SessionSummary `json:"sessions"`
}
