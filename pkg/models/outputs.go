package models

// Agent output shapes. Field names are part of the wire contract with the
// LLM (generateJSON schemas) and with stored step/job rows, hence the
// camelCase JSON tags.

// KeywordData summarizes search metrics for the target keyword.
type KeywordData struct {
	SearchVolume int     `json:"searchVolume,omitempty"`
	Difficulty   int     `json:"difficulty,omitempty"`
	Intent       string  `json:"intent,omitempty"`
	CPC          float64 `json:"cpc,omitempty"`
}

// Competitor is one ranking page from SERP analysis.
type Competitor struct {
	URL       string   `json:"url"`
	Title     string   `json:"title"`
	WordCount int      `json:"wordCount,omitempty"`
	Headings  []string `json:"headings,omitempty"`
}

// ResearchOutput is the research agent result.
type ResearchOutput struct {
	Keyword              string       `json:"keyword"`
	KeywordData          KeywordData  `json:"keywordData"`
	Competitors          []Competitor `json:"competitors"`
	RelatedKeywords      []string     `json:"relatedKeywords"`
	PAAQuestions         []string     `json:"paaQuestions"`
	RecommendedWordCount int          `json:"recommendedWordCount"`
	ContentGaps          []string     `json:"contentGaps,omitempty"`
}

// Heading is one article heading with its level (2-4).
type Heading struct {
	Level int    `json:"level"`
	Text  string `json:"text"`
}

// WriterOutput is the writer agent result.
type WriterOutput struct {
	Title     string    `json:"title"`
	Slug      string    `json:"slug"`
	Content   string    `json:"content"`
	Excerpt   string    `json:"excerpt"`
	WordCount int       `json:"wordCount"`
	Headings  []Heading `json:"headings"`
}

// HeadingAnalysis reports heading-structure problems found by the SEO agent.
type HeadingAnalysis struct {
	IsValid     bool     `json:"isValid"`
	Issues      []string `json:"issues"`
	Suggestions []string `json:"suggestions"`
}

// KeywordDensity reports keyword usage in the article body.
type KeywordDensity struct {
	Percentage float64 `json:"percentage"`
	Analysis   string  `json:"analysis"`
}

// InternalLink is a suggested internal link target.
type InternalLink struct {
	AnchorText    string `json:"anchorText"`
	SuggestedPath string `json:"suggestedPath"`
	Reason        string `json:"reason"`
}

// SEOOutput is the SEO agent result.
type SEOOutput struct {
	MetaTitle         string                 `json:"metaTitle"`
	MetaDescription   string                 `json:"metaDescription"`
	HeadingAnalysis   HeadingAnalysis        `json:"headingAnalysis"`
	KeywordDensity    KeywordDensity         `json:"keywordDensity"`
	SchemaMarkup      map[string]interface{} `json:"schemaMarkup"`
	InternalLinks     []InternalLink         `json:"internalLinks,omitempty"`
	OptimizationScore int                    `json:"optimizationScore"`
}

// DimensionScores are the five QA quality dimensions, each 0-100.
type DimensionScores struct {
	Readability int `json:"readability"`
	SEO         int `json:"seo"`
	Accuracy    int `json:"accuracy"`
	Engagement  int `json:"engagement"`
	BrandVoice  int `json:"brandVoice"`
}

// QAOutput is the QA agent result.
type QAOutput struct {
	Passed             bool            `json:"passed"`
	OverallScore       int             `json:"overallScore"`
	DimensionScores    DimensionScores `json:"dimensionScores"`
	Issues             []Issue         `json:"issues"`
	Feedback           string          `json:"feedback"`
	FixedIssueIDs      []string        `json:"fixedIssueIds,omitempty"`
	PersistingIssueIDs []string        `json:"persistingIssueIds,omitempty"`
}

// FinalArticle is the assembled, publish-ready artifact.
type FinalArticle struct {
	Title           string                 `json:"title"`
	Slug            string                 `json:"slug"`
	Content         string                 `json:"content"`
	Excerpt         string                 `json:"excerpt"`
	MetaTitle       string                 `json:"metaTitle"`
	MetaDescription string                 `json:"metaDescription"`
	SchemaMarkup    map[string]interface{} `json:"schemaMarkup"`
	Template        string                 `json:"template"`
	Status          string                 `json:"status"`
	FocusKeyword    string                 `json:"focusKeyword,omitempty"`
	WordCount       int                    `json:"wordCount"`
}

// Article status values for FinalArticle.Status.
const (
	ArticleStatusDraft     = "draft"
	ArticleStatusPublished = "published"
)

// ProjectManagerOutput is the deterministic final assembly.
type ProjectManagerOutput struct {
	ReadyForPublish  bool         `json:"readyForPublish"`
	ValidationErrors []string     `json:"validationErrors"`
	FinalArticle     FinalArticle `json:"finalArticle"`
	Summary          string       `json:"summary"`
	Recommendations  []string     `json:"recommendations,omitempty"`
}
