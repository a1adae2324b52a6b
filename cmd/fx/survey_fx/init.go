package survey_fx

import (
	"errors"

	"go.uber.org/fx"
	"go.uber.org/zap"

	"uobsurvey/internal/config"
	"uobsurvey/internal/survey"
	"uobsurvey/pkg/logger"
	"uobsurvey/pkg/utils"
)

var Module = fx.Provide(
	ProvideGenerator,
	ProvideBaselineQuestions,
	provideFlowController,
	provideGuide,
	provideAssembler,
)

// ProvideGenerator connects to the configured LLM provider. Without an API key
// the survey still runs on fallback questions and reports are unavailable.
func ProvideGenerator(lc fx.Lifecycle, cfg *config.Config, l *zap.Logger) (survey.Generator, error) {
	client, err := utils.NewLLMClient(utils.LLMClientConfig{
		Provider: cfg.LLM.Provider,
		APIKey:   cfg.LLM.APIKey,
		Model:    cfg.LLM.Model,
		BaseURL:  cfg.LLM.BaseURL,
		Timeout:  cfg.LLM.Timeout,
	})
	if errors.Is(err, utils.ErrGeneratorUnavailable) {
		l.Warn("no LLM API key configured, using fallback questions only", zap.String("provider", cfg.LLM.Provider))
		return survey.NullGenerator{}, nil
	}
	if err != nil {
		return nil, err
	}

	lc.Append(fx.StopHook(client.Close))
	l.Info("LLM client ready", zap.String("provider", client.Provider()), zap.String("model", cfg.LLM.Model))
	return survey.NewLiveGenerator(client), nil
}

func ProvideBaselineQuestions(cfg *config.Config) (survey.QuestionSet, error) {
	return survey.LoadBaselineQuestions(cfg.App.QuestionsFile)
}

func provideFlowController(gen survey.Generator, l *zap.Logger) *survey.Controller {
	return survey.NewController(gen, logger.Module(l, "flow"))
}

func provideGuide(gen survey.Generator, l *zap.Logger) *survey.Guide {
	return survey.NewGuide(gen, logger.Module(l, "guide"))
}

func provideAssembler(gen survey.Generator, l *zap.Logger) *survey.Assembler {
	return survey.NewAssembler(gen, logger.Module(l, "report"))
}
