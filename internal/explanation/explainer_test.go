package explanation

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/r-okamoto/explainer/internal/inference"
	mock_inference "github.com/r-okamoto/explainer/internal/mocks/inference"
)

func TestExplainer_Explain(t *testing.T) {
	tests := []struct {
		name      string
		paragraph string
		setupMock func(mockClient *mock_inference.MockClient)

		wantSummary []string
		wantErr     error
		wantKind    ValidationKind
	}{
		{
			name:      "empty input is rejected without a network call",
			paragraph: "   \n\t ",
			setupMock: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().Explain(gomock.Any(), gomock.Any()).Times(0)
			},
			wantErr: ErrEmptyParagraph,
		},
		{
			name:      "valid model output",
			paragraph: "Thermodynamic entropy quantifies the dispersal of energy.",
			setupMock: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().
					Explain(gomock.Any(), inference.ExplainRequest{
						Paragraph: "Thermodynamic entropy quantifies the dispersal of energy.",
					}).
					Return(inference.ExplainResponse{Content: validOutput}, nil)
			},
			wantSummary: []string{"First sentence.", "Second sentence.", "Third sentence."},
		},
		{
			name:      "provider failure surfaces as a request error",
			paragraph: "Some paragraph.",
			setupMock: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().
					Explain(gomock.Any(), gomock.Any()).
					Return(inference.ExplainResponse{}, &inference.RequestError{StatusCode: 401, Message: "invalid api key"})
			},
			wantErr: &inference.RequestError{},
		},
		{
			name:      "non-JSON model output",
			paragraph: "Some paragraph.",
			setupMock: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().
					Explain(gomock.Any(), gomock.Any()).
					Return(inference.ExplainResponse{Content: "not json"}, nil)
			},
			wantKind: KindParse,
		},
		{
			name:      "schema mismatch in model output",
			paragraph: "Some paragraph.",
			setupMock: func(mockClient *mock_inference.MockClient) {
				mockClient.EXPECT().
					Explain(gomock.Any(), gomock.Any()).
					Return(inference.ExplainResponse{Content: `{"summary_sentences": ["only one"]}`}, nil)
			},
			wantKind: KindSchema,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			mockClient := mock_inference.NewMockClient(ctrl)
			tc.setupMock(mockClient)

			explainer, err := NewExplainer(mockClient)
			require.NoError(t, err)

			got, err := explainer.Explain(context.Background(), tc.paragraph)

			if tc.wantKind != "" {
				var validationErr *ValidationError
				require.ErrorAs(t, err, &validationErr)
				assert.Equal(t, tc.wantKind, validationErr.Kind)
				return
			}
			if tc.wantErr != nil {
				require.Error(t, err)
				if requestErr, ok := tc.wantErr.(*inference.RequestError); ok {
					assert.ErrorAs(t, err, &requestErr)
				} else {
					assert.ErrorIs(t, err, tc.wantErr)
				}
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tc.wantSummary, got.SummarySentences)
		})
	}
}
