package survey

import (
	"context"
	"fmt"
	"hash/fnv"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const FallbackSummary = `## Survey Summary

Thank you for completing this survey. Your responses have been recorded and will be analyzed by our team.

**Next Steps:**
- Your responses will be reviewed by our consultants
- We will identify key areas for improvement
- A detailed assessment report will be prepared
- We will schedule a follow-up discussion

Please note that a detailed analysis requires manual review of your responses.`

// Guide produces the optional helpers around the dynamic flow: answering
// tips per question and an insights summary once the flow is complete.
type Guide struct {
	generator TextGenerator
	tooltips  *cache.Cache
	logger    *zap.Logger
}

func NewGuide(generator TextGenerator, logger *zap.Logger) *Guide {
	if generator == nil {
		generator = NullGenerator{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Guide{
		generator: generator,
		tooltips:  cache.New(6*time.Hour, 30*time.Minute),
		logger:    logger,
	}
}

// Tooltip returns guidance for answering question. Results are cached per
// question number and text.
func (g *Guide) Tooltip(ctx context.Context, question string, number int) (string, QuestionSource) {
	key := tooltipKey(question, number)
	if cached, found := g.tooltips.Get(key); found {
		return cached.(string), SourceGenerator
	}

	tip, err := g.generator.Generate(ctx, Prompt{
		System: "You are a helpful survey guide. Generate concise, practical tooltips.",
		User: fmt.Sprintf(`For the following survey question, generate a helpful tooltip that:
1. Explains what details to include in the answer
2. Provides 2-3 concrete examples relevant to banking/data platforms
3. Is concise (2-3 sentences max)
4. Helps the user give a better, more detailed answer

Question: %s

Generate ONLY the tooltip text (no labels, no numbering).`, question),
		Temperature: 0.5,
		MaxTokens:   150,
	})
	if err != nil {
		g.logger.Debug("tooltip generation failed, using fallback", zap.Int("number", number), zap.Error(err))
		return FallbackTooltip(question), SourceFallback
	}

	g.tooltips.Set(key, tip, cache.DefaultExpiration)
	return tip, SourceGenerator
}

func FallbackTooltip(question string) string {
	return "Add specifics for this question: **" + question +
		"**. Include systems, owners, timelines, risks, metrics/SLAs, blockers, and current tools so we can tailor follow-ups."
}

// Summary condenses a completed conversation into strengths, challenges,
// priorities and a maturity estimate.
func (g *Guide) Summary(ctx context.Context, history []ConversationTurn) (string, QuestionSource) {
	if len(history) == 0 {
		return FallbackSummary, SourceFallback
	}

	pairs := make([]string, 0, len(history))
	for i, turn := range history {
		pairs = append(pairs, fmt.Sprintf("Q%d: %s\nA: %s\n", i+1, turn.Question, turn.Answer))
	}

	summary, err := g.generator.Generate(ctx, Prompt{
		System: "You are an expert IT consultant. Generate insightful summaries.",
		User: fmt.Sprintf(`Based on the following survey responses about IT infrastructure and data platforms,
generate a concise insights summary that:
1. Identifies key strengths
2. Highlights main challenges
3. Suggests priority areas for improvement
4. Assesses maturity level (1-5 scale)

Survey Responses:
%s

Generate a professional, actionable summary (200-300 words).`, strings.Join(pairs, "\n")),
		Temperature: 0.7,
		MaxTokens:   400,
	})
	if err != nil {
		g.logger.Warn("insights summary failed, using fallback", zap.Error(err))
		return FallbackSummary, SourceFallback
	}
	return summary, SourceGenerator
}

func tooltipKey(question string, number int) string {
	h := fnv.New32a()
	h.Write([]byte(question))
	return fmt.Sprintf("tooltip_%d_%x", number, h.Sum32())
}
