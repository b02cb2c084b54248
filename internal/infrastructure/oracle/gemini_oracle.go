package oracle

import (
	"context"
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"laporan_zakat/internal/domain/entities"
	"laporan_zakat/internal/usecase"
	"laporan_zakat/internal/usecase/interfaces"

	"go.uber.org/zap"
	"google.golang.org/genai"
)

var ErrMissingAPIKey = errors.New("missing GEMINI_API_KEY")

// ContentGenerator is the part of the genai Models service the oracle needs.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// GeminiOracle extracts intents with Gemini function calling. In mock mode it
// answers from a handful of local patterns and never touches the network.
type GeminiOracle struct {
	models   ContentGenerator
	model    string
	mockMode bool
	logger   *zap.Logger
}

var _ interfaces.IIntentOracle = (*GeminiOracle)(nil)

func NewGeminiOracle(ctx context.Context, apiKey, model string, mock bool, logger *zap.Logger) (*GeminiOracle, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	logger = logger.Named("oracle")
	if mock {
		logger.Info("mock mode enabled")
		return &GeminiOracle{mockMode: true, logger: logger}, nil
	}
	if apiKey == "" {
		return nil, ErrMissingAPIKey
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create GenAI client: %w", err)
	}
	logger.Info("gemini client initialized", zap.String("model", model))
	return NewGeminiOracleWithGenerator(client.Models, model, logger), nil
}

func NewGeminiOracleWithGenerator(models ContentGenerator, model string, logger *zap.Logger) *GeminiOracle {
	if logger == nil {
		logger = zap.NewNop()
	}
	if model == "" {
		model = "gemini-2.5-flash"
	}
	return &GeminiOracle{models: models, model: model, logger: logger}
}

func (o *GeminiOracle) MockMode() bool {
	return o.mockMode
}

// Query sends one utterance to the model. Transport or API failures are
// reported as usecase.ErrOracleFailure.
func (o *GeminiOracle) Query(ctx context.Context, text string) (entities.OracleResponse, error) {
	if o.mockMode {
		return mockQuery(text), nil
	}

	resp, err := o.models.GenerateContent(ctx, o.model, genai.Text(text), &genai.GenerateContentConfig{
		SystemInstruction: genai.NewContentFromText(systemInstruction, genai.RoleUser),
		Tools:             []*genai.Tool{{FunctionDeclarations: functionDeclarations}},
	})
	if err != nil {
		o.logger.Error("generate content failed", zap.Error(err))
		return entities.OracleResponse{}, fmt.Errorf("%w: %v", usecase.ErrOracleFailure, err)
	}
	if resp == nil {
		return entities.OracleResponse{}, fmt.Errorf("%w: empty response", usecase.ErrOracleFailure)
	}

	out := entities.OracleResponse{}
	for _, fc := range resp.FunctionCalls() {
		if fc == nil {
			continue
		}
		out.FunctionCalls = append(out.FunctionCalls, entities.FunctionCall{Name: fc.Name, Args: fc.Args})
	}
	if len(out.FunctionCalls) == 0 {
		out.AnswerText = resp.Text()
	}
	o.logger.Info("query answered", zap.Int("function_calls", len(out.FunctionCalls)))
	return out, nil
}

var (
	mockList   = regexp.MustCompile(`\b(tampilkan|lihat|daftar|list|show)\b`)
	mockReport = regexp.MustCompile(`\b(laporan|zakat|report)\b`)
	mockUsers  = regexp.MustCompile(`\b(relawan|pengguna|user|operator)\b`)
	mockDelete = regexp.MustCompile(`\b(hapus|delete)\b.*?(\d+)`)
	mockAdd    = regexp.MustCompile(`\b(tambah|tambahkan|daftarkan|add|register)\b`)
)

func mockQuery(text string) entities.OracleResponse {
	lower := strings.ToLower(text)
	if m := mockDelete.FindStringSubmatch(lower); m != nil {
		id, _ := strconv.ParseFloat(m[2], 64)
		return entities.OracleResponse{FunctionCalls: []entities.FunctionCall{
			{Name: usecase.OpDeleteReport, Args: map[string]any{"id": id}},
		}}
	}
	if mockAdd.MatchString(lower) && mockUsers.MatchString(lower) {
		return entities.OracleResponse{FunctionCalls: []entities.FunctionCall{{Name: usecase.OpCreateOperator, Args: map[string]any{}}}}
	}
	if mockList.MatchString(lower) {
		switch {
		case mockUsers.MatchString(lower):
			return entities.OracleResponse{FunctionCalls: []entities.FunctionCall{{Name: usecase.OpListOperators, Args: map[string]any{}}}}
		case mockReport.MatchString(lower):
			return entities.OracleResponse{FunctionCalls: []entities.FunctionCall{{Name: usecase.OpListReports, Args: map[string]any{}}}}
		}
	}
	return entities.OracleResponse{
		AnswerText: "Mohon maaf, saya belum memiliki informasi spesifik mengenai hal tersebut dalam basis pengetahuan saya tentang Fikih Zakat.",
	}
}
