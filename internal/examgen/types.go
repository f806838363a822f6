package examgen

// ScopeType describes the breadth of content an exam covers.
type ScopeType string

const (
	ScopeMidterm1 ScopeType = "MIDTERM_1"
	ScopeFinal1   ScopeType = "FINAL_1"
	ScopeMidterm2 ScopeType = "MIDTERM_2"
	ScopeFinal2   ScopeType = "FINAL_2"

	// ScopeTopic means the exam covers the single topic in ExamConfig.SpecificTopic.
	ScopeTopic ScopeType = "TOPIC"
)

var scopeLabels = map[ScopeType]string{
	ScopeMidterm1: "Giữa học kỳ I",
	ScopeFinal1:   "Cuối học kỳ I",
	ScopeMidterm2: "Giữa học kỳ II",
	ScopeFinal2:   "Cuối học kỳ II",
	ScopeTopic:    "Theo chủ đề",
}

// ScopeTypes lists the known scope kinds in display order.
func ScopeTypes() []ScopeType {
	return []ScopeType{ScopeMidterm1, ScopeFinal1, ScopeMidterm2, ScopeFinal2, ScopeTopic}
}

// Label returns the Vietnamese label for the scope. Unknown scopes render as-is.
func (s ScopeType) Label() string {
	if l, ok := scopeLabels[s]; ok {
		return l
	}
	return string(s)
}

// Valid reports whether s is one of the known scope kinds.
func (s ScopeType) Valid() bool {
	_, ok := scopeLabels[s]
	return ok
}

// ExamConfig is the caller's description of the exam to generate.
type ExamConfig struct {
	Subject       string    `json:"subject" validate:"required"`
	Grade         string    `json:"grade" validate:"required"`
	ScopeType     ScopeType `json:"scopeType" validate:"required,oneof=MIDTERM_1 FINAL_1 MIDTERM_2 FINAL_2 TOPIC"`
	SpecificTopic string    `json:"specificTopic" validate:"required_if=ScopeType TOPIC"`
	Duration      string    `json:"duration" validate:"required"`
	Scale         string    `json:"scale" validate:"required"`
	School        string    `json:"school" validate:"required"`
}

// ExamResult is the generated exam dossier. Each field is formatted text
// (tables may be HTML markup) as returned by the model.
type ExamResult struct {
	Matrix    string `json:"matrix"`
	SpecTable string `json:"specTable"`
	ExamPaper string `json:"examPaper"`
	AnswerKey string `json:"answerKey"`
}
