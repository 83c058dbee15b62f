package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"

	"github.com/khoahotran/portfolio-api/internal/application/service"
	"github.com/khoahotran/portfolio-api/internal/config"
	"github.com/khoahotran/portfolio-api/internal/domain/analytics"
	"github.com/khoahotran/portfolio-api/pkg/apperror"
	"github.com/khoahotran/portfolio-api/pkg/logger"
)

var tracer = otel.Tracer("ai_usecase")

const (
	DisabledMessage = "AI features are currently disabled"

	StatusAvailable     = "available"
	StatusDisabled      = "disabled"
	StatusNotConfigured = "not_configured"

	maxMessageLength = 4000
	maxQueryLength   = 500

	chatTemplate = "I'm Sagar Neeli's AI assistant. I can help you learn more about my backend engineering and AI/ML expertise. You asked: %s"
)

type Services struct {
	OpenAI      string `json:"openai"`
	HuggingFace string `json:"huggingface"`
	Qdrant      string `json:"qdrant"`
}

type Status struct {
	Status   string   `json:"status"`
	Services Services `json:"services"`
}

type ChatInput struct {
	Message string  `json:"message"`
	Context *string `json:"context"`
}

func (in ChatInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Message,
			validation.Required.Error("message is required"),
			validation.RuneLength(1, maxMessageLength).Error("message must be at most 4000 characters"),
		),
	)
}

type ChatOutput struct {
	Response string  `json:"response"`
	Context  *string `json:"context"`
}

type Recommendation struct {
	Type        string  `json:"type"`
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Confidence  float64 `json:"confidence"`
}

type SearchInput struct {
	Query string `json:"query"`
}

func (in SearchInput) Validate() error {
	return validation.ValidateStruct(&in,
		validation.Field(&in.Query,
			validation.Required.Error("query is required"),
			validation.RuneLength(1, maxQueryLength).Error("query must be at most 500 characters"),
		),
	)
}

type SearchResult struct {
	Type      string  `json:"type"`
	Title     string  `json:"title"`
	Content   string  `json:"content"`
	Relevance float64 `json:"relevance"`
}

type SearchOutput struct {
	Query   string         `json:"query"`
	Results []SearchResult `json:"results"`
}

var recommendations = []Recommendation{
	{
		Type:        "project",
		Title:       "Real-time ML Pipeline",
		Description: "Based on your interest in real-time systems, you might like this project showcasing real-time ML inference pipelines.",
		Confidence:  0.85,
	},
	{
		Type:        "skill",
		Title:       "Vector Databases",
		Description: "Given your AI/ML background, exploring vector databases like Pinecone or Weaviate could be valuable.",
		Confidence:  0.92,
	},
	{
		Type:        "technology",
		Title:       "LangChain",
		Description: "Your experience with AI systems suggests LangChain would be a great addition to your toolkit.",
		Confidence:  0.78,
	},
}

var searchResults = []SearchResult{
	{
		Type:      "experience",
		Title:     "HubSpot - AI Translation",
		Content:   "Integrated AI translation at scale with 95% adoption rate",
		Relevance: 0.95,
	},
	{
		Type:      "project",
		Title:     "Event-Driven Messaging System",
		Content:   "SQS + Python CDK implementation for vendor synchronization",
		Relevance: 0.87,
	},
	{
		Type:      "skill",
		Title:     "Backend Engineering",
		Content:   "Python, Java, Go, AWS, GCP, Docker, Kubernetes",
		Relevance: 0.82,
	},
}

// AIUseCase serves the mocked assistant endpoints. Nothing here calls a
// model; responses are templated or static.
type AIUseCase struct {
	enabled   bool
	services  Services
	publisher service.EventPublisher
	logger    logger.Logger
}

func NewAIUseCase(cfg config.Config, publisher service.EventPublisher, log logger.Logger) *AIUseCase {
	return &AIUseCase{
		enabled: cfg.Features.EnableAI,
		services: Services{
			OpenAI:      configured(cfg.AI.OpenAIAPIKey),
			HuggingFace: configured(cfg.AI.HuggingFaceAPIKey),
			Qdrant:      configured(cfg.AI.QdrantURL),
		},
		publisher: publisher,
		logger:    log,
	}
}

func configured(v string) string {
	if v == "" {
		return StatusNotConfigured
	}
	return StatusAvailable
}

// Status is reported whether or not the feature flag is on.
func (uc *AIUseCase) Status() Status {
	s := Status{Status: StatusDisabled, Services: uc.services}
	if uc.enabled {
		s.Status = StatusAvailable
	}
	return s
}

func (uc *AIUseCase) Chat(ctx context.Context, in ChatInput, requestID string) (*ChatOutput, error) {
	ctx, span := tracer.Start(ctx, "Chat")
	defer span.End()

	if err := validate(in); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !uc.enabled {
		return nil, apperror.NewFeatureDisabled(DisabledMessage)
	}

	response := fmt.Sprintf(chatTemplate, in.Message)
	if in.Context != nil {
		response += fmt.Sprintf(" (context: %s)", *in.Context)
	}
	span.SetAttributes(attribute.Bool("has_context", in.Context != nil))

	uc.publish(ctx, analytics.NewEvent(analytics.EventAIChat, "chat", requestID))
	return &ChatOutput{Response: response, Context: in.Context}, nil
}

// Recommendations returns the static suggestions, highest confidence first.
func (uc *AIUseCase) Recommendations(ctx context.Context) ([]Recommendation, error) {
	_, span := tracer.Start(ctx, "Recommendations")
	defer span.End()

	if !uc.enabled {
		return nil, apperror.NewFeatureDisabled(DisabledMessage)
	}

	out := make([]Recommendation, len(recommendations))
	copy(out, recommendations)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	return out, nil
}

// Search echoes the query with static results, most relevant first.
func (uc *AIUseCase) Search(ctx context.Context, in SearchInput, requestID string) (*SearchOutput, error) {
	ctx, span := tracer.Start(ctx, "Search")
	defer span.End()

	if err := validate(in); err != nil {
		span.RecordError(err)
		return nil, err
	}
	if !uc.enabled {
		return nil, apperror.NewFeatureDisabled(DisabledMessage)
	}

	results := make([]SearchResult, len(searchResults))
	copy(results, searchResults)
	sort.SliceStable(results, func(i, j int) bool { return results[i].Relevance > results[j].Relevance })

	uc.publish(ctx, analytics.NewEvent(analytics.EventAISearch, "search", requestID))
	return &SearchOutput{Query: in.Query, Results: results}, nil
}

func (uc *AIUseCase) publish(ctx context.Context, e analytics.Event) {
	if err := uc.publisher.Publish(ctx, e); err != nil {
		uc.logger.Warn("Failed to publish analytics event", zap.String("type", string(e.Type)), zap.Error(err))
	}
}

// validate turns ozzo field errors into a validation AppError.
func validate(v validation.Validatable) error {
	err := v.Validate()
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		fields := make(map[string]string, len(fieldErrs))
		for field, fe := range fieldErrs {
			fields[field] = fe.Error()
		}
		return apperror.NewValidation("request body failed validation", fields, err)
	}
	return apperror.NewValidation(err.Error(), nil, err)
}
