package stub

import (
	"slices"
	"sync"
)

// Marketplace is the in-memory state behind the fake data store and push provider.
type Marketplace struct {
	mu            sync.RWMutex
	profiles      []ProfileRow
	tokens        []TokenRow
	failing       map[string]bool
	sentTokens    []string
	rejected      int
	tokenRequests int
}

func NewMarketplace() *Marketplace {
	return &Marketplace{
		failing: make(map[string]bool),
	}
}

func (m *Marketplace) ResetAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.profiles = nil
	m.tokens = nil
	m.failing = make(map[string]bool)
	m.sentTokens = nil
	m.rejected = 0
	m.tokenRequests = 0
}

func (m *Marketplace) Seed(req SeedRequest) {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, p := range req.Profiles {
		profileType := p.ProfileType
		if profileType == "" {
			profileType = "provider"
		}
		row := ProfileRow{
			UserID:      p.UserID,
			ProfileType: profileType,
			ServiceType: p.ServiceTypes,
		}
		if p.FullName != "" {
			name := p.FullName
			row.FullName = &name
		}
		m.profiles = append(m.profiles, row)
	}
	m.tokens = append(m.tokens, req.Tokens...)
	for _, t := range req.FailTokens {
		m.failing[t] = true
	}
}

func (m *Marketplace) Profiles(profileType string, containsAll []string, limit int) []ProfileRow {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]ProfileRow, 0)
	for _, p := range m.profiles {
		if profileType != "" && p.ProfileType != profileType {
			continue
		}
		if !containsEvery(p.ServiceType, containsAll) {
			continue
		}
		rows = append(rows, p)
		if limit > 0 && len(rows) >= limit {
			break
		}
	}
	return rows
}

func (m *Marketplace) Tokens(userIDs []string) []TokenRow {
	m.mu.RLock()
	defer m.mu.RUnlock()

	rows := make([]TokenRow, 0)
	for _, t := range m.tokens {
		if slices.Contains(userIDs, t.UserID) {
			rows = append(rows, t)
		}
	}
	return rows
}

func (m *Marketplace) IssueAccessToken() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.tokenRequests++
}

// Deliver records a send and reports whether the provider accepts the token.
func (m *Marketplace) Deliver(token string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.failing[token] {
		m.rejected++
		return false
	}
	m.sentTokens = append(m.sentTokens, token)
	return true
}

func (m *Marketplace) Stats() StatsResponse {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return StatsResponse{
		TokenRequests: m.tokenRequests,
		Sends:         len(m.sentTokens),
		Rejected:      m.rejected,
		SentTokens:    slices.Clone(m.sentTokens),
	}
}

func containsEvery(have, want []string) bool {
	for _, w := range want {
		if !slices.Contains(have, w) {
			return false
		}
	}
	return true
}
