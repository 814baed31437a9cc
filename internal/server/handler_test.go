package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/r-okamoto/explainer/internal/explanation"
	"github.com/r-okamoto/explainer/internal/inference"
	mock_inference "github.com/r-okamoto/explainer/internal/mocks/inference"
)

const validOutput = `{
  "summary_sentences": ["First sentence.", "Second sentence.", "Third sentence."],
  "bullets": ["Point one", "Point two", "Point three", "Point four", "Point five"],
  "vocab": [
    {"term": "osmosis", "definition": "movement of water across a membrane"},
    {"term": "solvent", "definition": "the dissolving substance"},
    {"term": "membrane", "definition": "a selective barrier"}
  ]
}`

func newTestMux(t *testing.T, mockClient *mock_inference.MockClient) *http.ServeMux {
	t.Helper()
	explainer, err := explanation.NewExplainer(mockClient)
	require.NoError(t, err)
	return NewServeMux(NewExplainHandler(explainer, "gpt-4o-mini"))
}

func TestExplainHandler_Explain(t *testing.T) {
	tests := []struct {
		name        string
		requestBody string
		setup       func(mockClient *mock_inference.MockClient)

		wantStatusCode int
		wantErrorKind  string
		assertBody     func(t *testing.T, body []byte)
	}{
		{
			name:        "Success",
			requestBody: `{"paragraph": "Osmosis is the movement of water."}`,
			setup: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().
					Explain(gomock.Any(), inference.ExplainRequest{Paragraph: "Osmosis is the movement of water."}).
					Return(inference.ExplainResponse{Content: validOutput}, nil)
			},
			wantStatusCode: http.StatusOK,
			assertBody: func(t *testing.T, body []byte) {
				var result explanation.Explanation
				require.NoError(t, json.Unmarshal(body, &result))
				assert.Equal(t, "First sentence.", result.SummarySentences[0])
				assert.Len(t, result.Bullets, 5)
				assert.Equal(t, "osmosis", result.Vocab[0].Term)
			},
		},
		{
			name:        "Empty paragraph",
			requestBody: `{"paragraph": "   "}`,
			setup: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().Explain(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "Invalid request body",
			requestBody: `{"paragraph": `,
			setup: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().Explain(gomock.Any(), gomock.Any()).Times(0)
			},
			wantStatusCode: http.StatusBadRequest,
		},
		{
			name:        "Model output is not JSON",
			requestBody: `{"paragraph": "Some paragraph."}`,
			setup: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().
					Explain(gomock.Any(), gomock.Any()).
					Return(inference.ExplainResponse{Content: "not json at all"}, nil)
			},
			wantStatusCode: http.StatusBadRequest,
			wantErrorKind:  "parse",
		},
		{
			name:        "Model output misses required fields",
			requestBody: `{"paragraph": "Some paragraph."}`,
			setup: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().
					Explain(gomock.Any(), gomock.Any()).
					Return(inference.ExplainResponse{Content: `{"bullets": ["only", "four", "short", "points"]}`}, nil)
			},
			wantStatusCode: http.StatusBadRequest,
			wantErrorKind:  "schema",
		},
		{
			name:        "Provider request fails",
			requestBody: `{"paragraph": "Some paragraph."}`,
			setup: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().
					Explain(gomock.Any(), gomock.Any()).
					Return(inference.ExplainResponse{}, &inference.RequestError{StatusCode: http.StatusUnauthorized, Message: "bad key"})
			},
			wantStatusCode: http.StatusBadGateway,
			assertBody: func(t *testing.T, body []byte) {
				var errorResponse ErrorResponse
				require.NoError(t, json.Unmarshal(body, &errorResponse))
				assert.Equal(t, "request failed", errorResponse.Error)
				assert.NotContains(t, errorResponse.Error, "bad key")
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_inference.NewMockClient(ctrl)
			tc.setup(mockClient)

			mux := newTestMux(t, mockClient)
			recorder := httptest.NewRecorder()
			request := httptest.NewRequest(http.MethodPost, "/api/v1/explain", strings.NewReader(tc.requestBody))
			mux.ServeHTTP(recorder, request)

			assert.Equal(t, tc.wantStatusCode, recorder.Code)
			assert.Equal(t, "application/json", recorder.Header().Get("Content-Type"))
			if tc.wantErrorKind != "" {
				var errorResponse ErrorResponse
				require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &errorResponse))
				assert.Equal(t, tc.wantErrorKind, errorResponse.Kind)
			}
			if tc.assertBody != nil {
				tc.assertBody(t, recorder.Body.Bytes())
			}
		})
	}
}

func TestExplainHandler_Index(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockClient := mock_inference.NewMockClient(ctrl)

	mux := newTestMux(t, mockClient)
	recorder := httptest.NewRecorder()
	mux.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, recorder.Code)
	assert.Contains(t, recorder.Header().Get("Content-Type"), "text/html")
	assert.Contains(t, recorder.Body.String(), "<textarea")
}
