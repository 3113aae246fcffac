package fanout

import (
	"context"
	"errors"
	"reflect"
	"testing"
	"time"

	"go.uber.org/mock/gomock"

	"github.com/KasumiMercury/primind-push-fanout/internal/domain"
)

func TestResolveRecipients(t *testing.T) {
	tests := []struct {
		name         string
		providers    []domain.Provider
		originator   string
		wantMatched  int
		wantEligible []string
	}{
		{
			name:         "excludes originator",
			providers:    []domain.Provider{{UserID: "u1"}, {UserID: "u2"}, {UserID: "u3"}},
			originator:   "u1",
			wantMatched:  3,
			wantEligible: []string{"u2", "u3"},
		},
		{
			name:         "collapses duplicate rows",
			providers:    []domain.Provider{{UserID: "u2"}, {UserID: "u3"}, {UserID: "u2"}},
			originator:   "u1",
			wantMatched:  3,
			wantEligible: []string{"u2", "u3"},
		},
		{
			name:         "originator only",
			providers:    []domain.Provider{{UserID: "u1"}},
			originator:   "u1",
			wantMatched:  1,
			wantEligible: []string{},
		},
		{
			name:         "no match",
			providers:    nil,
			originator:   "u1",
			wantMatched:  0,
			wantEligible: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := domain.NewMockProviderRepository(ctrl)
			repo.EXPECT().FindProvidersByServiceType(gomock.Any(), "plumbing").Return(tt.providers, nil)

			resolver := NewResolver(repo, time.Second)
			matched, eligible, err := resolver.ResolveRecipients(context.Background(), "plumbing", tt.originator)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}

			if matched != tt.wantMatched {
				t.Errorf("matched: got %d, want %d", matched, tt.wantMatched)
			}
			if got := domain.ProviderIDs(eligible); !reflect.DeepEqual(got, tt.wantEligible) {
				t.Errorf("eligible: got %v, want %v", got, tt.wantEligible)
			}
		})
	}
}

func TestResolveRecipientsWrapsStoreErrors(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cause := errors.New("connection reset")
	repo := domain.NewMockProviderRepository(ctrl)
	repo.EXPECT().FindProvidersByServiceType(gomock.Any(), gomock.Any()).Return(nil, cause)

	_, _, err := NewResolver(repo, 0).ResolveRecipients(context.Background(), "plumbing", "u1")
	if !errors.Is(err, domain.ErrDataStore) {
		t.Errorf("expected ErrDataStore, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be preserved, got %v", err)
	}
}

func TestLookupTokens(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockProviderRepository(ctrl)
	repo.EXPECT().FindTokensByUserIDs(gomock.Any(), []string{"u2", "u3"}).
		DoAndReturn(func(ctx context.Context, _ []string) ([]domain.DeliveryToken, error) {
			if _, ok := ctx.Deadline(); !ok {
				t.Error("expected lookup to carry a deadline")
			}
			return []domain.DeliveryToken{{UserID: "u2", Token: "t1"}}, nil
		})

	resolver := NewResolver(repo, time.Second)
	tokens, err := resolver.LookupTokens(context.Background(), []domain.Provider{{UserID: "u2"}, {UserID: "u3"}})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 1 || tokens[0].Token != "t1" {
		t.Errorf("tokens: got %+v", tokens)
	}
}

func TestLookupTokensWithoutRecipients(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := domain.NewMockProviderRepository(ctrl)
	repo.EXPECT().FindTokensByUserIDs(gomock.Any(), gomock.Any()).Times(0)

	tokens, err := NewResolver(repo, time.Second).LookupTokens(context.Background(), nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(tokens) != 0 {
		t.Errorf("expected no tokens, got %+v", tokens)
	}
}
