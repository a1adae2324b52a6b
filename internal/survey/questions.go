package survey

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"os"
	"strings"
)

// TotalQuestions is the number of steps in the dynamic question flow.
const TotalQuestions = 15

const (
	QuestionTypeText           = "text"
	QuestionTypeMultipleChoice = "multiple_choice"
)

// FirstQuestion seeds every dynamic flow.
const FirstQuestion = `What are your main objectives, and what are your priorities?

Please specify:
- Your primary business objectives
- High priority areas (must address in next 6 months)
- Medium priority areas (important but can wait 6-12 months)
- Low priority areas (nice to have, longer term)`

// FallbackQuestions is indexed cyclically by the position of the question
// being produced whenever the generator cannot supply one.
var FallbackQuestions = []string{
	"Can you elaborate on the current data infrastructure and any recent changes?",
	"What are the main challenges you're facing with your current setup?",
	"How do you currently handle data quality and validation?",
	"What tools and technologies are you using for ETL and data processing?",
	"How is your team structured and what are their main responsibilities?",
	"What compliance and regulatory requirements do you need to meet?",
	"How do you monitor and track job performance and failures?",
	"What would be your ideal solution or future state architecture?",
	"What are your biggest pain points with the current system?",
	"How do you handle disaster recovery and business continuity?",
	"What's your current approach to data governance and metadata management?",
	"How are you planning to scale your data infrastructure?",
	"What's your experience with cloud platforms and modern data stacks?",
	"How do you handle testing and validation of data pipelines?",
	"What would success look like for your organization?",
}

// FallbackQuestion never fails: the index wraps around the list.
func FallbackQuestion(position int) string {
	if position < 0 {
		position = -position
	}
	return FallbackQuestions[position%len(FallbackQuestions)]
}

type Question struct {
	ID       string   `json:"id"`
	Num      int      `json:"num"`
	Category string   `json:"category"`
	Text     string   `json:"text"`
	Type     string   `json:"type"`
	Options  []string `json:"options,omitempty"`
	Required bool     `json:"required"`
}

// QuestionSet is an ordered table of fixed questions.
type QuestionSet []Question

func (qs QuestionSet) ByID(id string) (Question, bool) {
	for _, q := range qs {
		if q.ID == id {
			return q, true
		}
	}
	return Question{}, false
}

// Text resolves a question id to its text, falling back to the id itself.
func (qs QuestionSet) Text(id string) string {
	if q, ok := qs.ByID(id); ok {
		return q.Text
	}
	return id
}

const (
	CategoryInfrastructure = "INFRASTRUCTURE"
	CategoryGovernance     = "GOVERNANCE & APPROVALS"
	CategoryFrameworks     = "FRAMEWORKS & STANDARDS"
)

// AIQuestions is the AI/GenAI discovery table shared by the answer form,
// the submission builder and the admin views.
var AIQuestions = QuestionSet{
	{ID: "AI_Q1", Num: 1, Category: CategoryInfrastructure, Type: QuestionTypeText, Required: true,
		Text: "What GPU and computing infrastructure do you currently have available, and is it sufficient to support GenAI model training and inference?"},
	{ID: "AI_Q2", Num: 2, Category: CategoryInfrastructure, Type: QuestionTypeText, Required: true,
		Text: "Do you have access to commercial LLMs (OpenAI, Azure OpenAI, Anthropic Claude, Google Gemini) or are you planning to use open-source models (Llama, Mistral, etc.)?"},
	{ID: "AI_Q3", Num: 3, Category: CategoryInfrastructure, Type: QuestionTypeText, Required: true,
		Text: "Which cloud environments (AWS, Azure, GCP) are approved for your organization, and do you have access to AI/ML platforms like AWS SageMaker, Azure AI Foundry, or Google Vertex AI?"},
	{ID: "AI_Q4", Num: 4, Category: CategoryInfrastructure, Type: QuestionTypeText, Required: true,
		Text: "What data storage infrastructure do you have (data lakes, data warehouses, databases), and can it support the data volumes required for GenAI model training and inference?"},
	{ID: "AI_Q5", Num: 5, Category: CategoryInfrastructure, Type: QuestionTypeText, Required: true,
		Text: "Do you have monitoring, logging, and observability infrastructure in place to support AI/GenAI model monitoring and governance?"},
	{ID: "AI_Q6", Num: 6, Category: CategoryGovernance, Type: QuestionTypeText, Required: true,
		Text: "Does your organization have an AI Council, AI Governance Board, or similar body that reviews and approves AI/GenAI projects before they start?"},
	{ID: "AI_Q7", Num: 7, Category: CategoryGovernance, Type: QuestionTypeText, Required: true,
		Text: "Before starting an AI/GenAI project, do we need to get approval from the Security team, Compliance team, or other governance bodies? What's the typical lead time?"},
	{ID: "AI_Q8", Num: 8, Category: CategoryGovernance, Type: QuestionTypeText, Required: true,
		Text: "What data privacy and regulatory compliance requirements apply to AI/GenAI projects, especially regarding data usage, model transparency, and audit trails?"},
	{ID: "AI_Q9", Num: 9, Category: CategoryGovernance, Type: QuestionTypeText, Required: true,
		Text: "Does your organization have an AI Ethics framework or Responsible AI guidelines that AI/GenAI projects must follow?"},
	{ID: "AI_Q10", Num: 10, Category: CategoryGovernance, Type: QuestionTypeText, Required: true,
		Text: "What change management and organizational approval processes are required before deploying AI/GenAI solutions to production?"},
	{ID: "AI_Q11", Num: 11, Category: CategoryFrameworks, Type: QuestionTypeText, Required: true,
		Text: "Is there a common framework or standard that needs to be adopted to build GenAI applications, or can we write our own framework?"},
	{ID: "AI_Q12", Num: 12, Category: CategoryFrameworks, Type: QuestionTypeText, Required: true,
		Text: "Do you have a model registry or model management system in place, and what are the requirements for model versioning, documentation, and governance?"},
	{ID: "AI_Q13", Num: 13, Category: CategoryFrameworks, Type: QuestionTypeText, Required: true,
		Text: "What testing, validation, and quality assurance standards apply to AI/GenAI models before they're deployed to production?"},
	{ID: "AI_Q14", Num: 14, Category: CategoryFrameworks, Type: QuestionTypeText, Required: true,
		Text: "What documentation and audit trail requirements apply to AI/GenAI projects, especially for regulatory compliance and internal governance?"},
	{ID: "AI_Q15", Num: 15, Category: CategoryFrameworks, Type: QuestionTypeText, Required: true,
		Text: "How should AI/GenAI projects integrate with your existing development, testing, and deployment processes (CI/CD, DevOps)?"},
}

//go:embed data/questions_fixed.json
var defaultBaselineJSON []byte

// LoadBaselineQuestions reads the baseline question table from path, or the
// embedded default set when path is empty.
func LoadBaselineQuestions(path string) (QuestionSet, error) {
	data := defaultBaselineJSON
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading baseline questions: %w", err)
		}
		data = b
	}
	return ParseBaselineQuestions(data)
}

func ParseBaselineQuestions(data []byte) (QuestionSet, error) {
	var qs QuestionSet
	if err := json.Unmarshal(data, &qs); err != nil {
		return nil, fmt.Errorf("parsing baseline questions: %w", err)
	}
	if len(qs) == 0 {
		return nil, fmt.Errorf("baseline question set is empty")
	}

	seen := make(map[string]bool, len(qs))
	for i := range qs {
		q := &qs[i]
		if q.ID == "" {
			q.ID = fmt.Sprintf("Q%d", i+1)
		}
		if seen[q.ID] {
			return nil, fmt.Errorf("duplicate baseline question id %q", q.ID)
		}
		seen[q.ID] = true
		q.Num = i + 1
		if q.Type == "" {
			q.Type = QuestionTypeText
		}
		if strings.TrimSpace(q.Text) == "" {
			return nil, fmt.Errorf("baseline question %q has no text", q.ID)
		}
		if q.Type == QuestionTypeMultipleChoice && len(q.Options) == 0 {
			return nil, fmt.Errorf("baseline question %q has no options", q.ID)
		}
	}
	return qs, nil
}
