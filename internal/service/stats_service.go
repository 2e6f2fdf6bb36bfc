package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/NAPONYAHASINE/journal/internal/models"
	"github.com/NAPONYAHASINE/journal/internal/repository"
)

// StatsService computes aggregates over closed trades. The primary views are
// journal-scoped, so every total is denominated in that journal's currency.
// The user-level methods roll stored results up across all of a user's
// journals as-is. Results are cached in Redis and invalidated on every trade
// write.
type StatsService struct {
	tradeRepo   *repository.TradeRepository
	userRepo    *repository.UserRepository
	journalRepo *repository.JournalRepository
	cache       *StatsCache
}

// NewStatsService creates a new StatsService
func NewStatsService(tradeRepo *repository.TradeRepository, userRepo *repository.UserRepository, journalRepo *repository.JournalRepository, cache *StatsCache) *StatsService {
	return &StatsService{
		tradeRepo:   tradeRepo,
		userRepo:    userRepo,
		journalRepo: journalRepo,
		cache:       cache,
	}
}

// Dashboard summarizes closed trades
type Dashboard struct {
	TotalTrades int     `json:"total_trades"`
	TotalGains  float64 `json:"total_gains"`
	TotalLosses float64 `json:"total_losses"`
	WinRate     float64 `json:"win_rate"`
}

// SymbolStats aggregates closed trades of one symbol
type SymbolStats struct {
	Symbol     string  `json:"symbol"`
	TradeCount int     `json:"trade_count"`
	Total      float64 `json:"total"`
	WinRate    float64 `json:"win_rate"`
}

// TagStats aggregates closed trades carrying one tag. A trade with several
// tags counts once under each.
type TagStats struct {
	Tag        string  `json:"tag"`
	TradeCount int     `json:"trade_count"`
	Total      float64 `json:"total"`
	WinRate    float64 `json:"win_rate"`
}

// HourStats aggregates closed trades by entry hour ("09:00")
type HourStats struct {
	Hour       string  `json:"hour"`
	TradeCount int     `json:"trade_count"`
	Total      float64 `json:"total"`
}

// MonthStats aggregates closed trades by entry month ("2026-08")
type MonthStats struct {
	Month      string  `json:"month"`
	Gains      float64 `json:"gains"`
	TradeCount int     `json:"trade_count"`
}

// RankingEntry is one row of the community performance ranking
type RankingEntry struct {
	UserID uint    `json:"user_id"`
	Name   string  `json:"name"`
	Score  float64 `json:"score"`
}

// JournalDashboard returns totals and win rate over one journal's closed
// trades, in the journal currency. Losses are reported as a positive
// magnitude.
func (s *StatsService) JournalDashboard(ctx context.Context, journalID, userID uint) (*Dashboard, error) {
	name := fmt.Sprintf("journal:%d:dashboard", journalID)
	var cached Dashboard
	if s.cache.Get(ctx, userID, name, &cached) {
		return &cached, nil
	}

	trades, err := s.journalTrades(journalID, userID)
	if err != nil {
		return nil, err
	}

	d := computeDashboard(trades)
	s.cache.Set(ctx, userID, name, d)
	return d, nil
}

// JournalBySymbol aggregates one journal's closed trades per instrument symbol
func (s *StatsService) JournalBySymbol(ctx context.Context, journalID, userID uint) ([]SymbolStats, error) {
	name := fmt.Sprintf("journal:%d:by_symbol", journalID)
	var cached []SymbolStats
	if s.cache.Get(ctx, userID, name, &cached) {
		return cached, nil
	}

	trades, err := s.journalTrades(journalID, userID)
	if err != nil {
		return nil, err
	}

	stats := computeBySymbol(trades)
	s.cache.Set(ctx, userID, name, stats)
	return stats, nil
}

// JournalByTag aggregates one journal's closed trades per tag
func (s *StatsService) JournalByTag(ctx context.Context, journalID, userID uint) ([]TagStats, error) {
	name := fmt.Sprintf("journal:%d:by_tag", journalID)
	var cached []TagStats
	if s.cache.Get(ctx, userID, name, &cached) {
		return cached, nil
	}

	trades, err := s.journalTrades(journalID, userID)
	if err != nil {
		return nil, err
	}

	stats := computeByTag(trades)
	s.cache.Set(ctx, userID, name, stats)
	return stats, nil
}

// JournalByHour aggregates one journal's closed trades by entry hour
func (s *StatsService) JournalByHour(ctx context.Context, journalID, userID uint) ([]HourStats, error) {
	name := fmt.Sprintf("journal:%d:by_hour", journalID)
	var cached []HourStats
	if s.cache.Get(ctx, userID, name, &cached) {
		return cached, nil
	}

	trades, err := s.journalTrades(journalID, userID)
	if err != nil {
		return nil, err
	}

	stats := computeByHour(trades)
	s.cache.Set(ctx, userID, name, stats)
	return stats, nil
}

// JournalByMonth aggregates one journal's closed trades by entry month
func (s *StatsService) JournalByMonth(ctx context.Context, journalID, userID uint) ([]MonthStats, error) {
	name := fmt.Sprintf("journal:%d:by_month", journalID)
	var cached []MonthStats
	if s.cache.Get(ctx, userID, name, &cached) {
		return cached, nil
	}

	trades, err := s.journalTrades(journalID, userID)
	if err != nil {
		return nil, err
	}

	stats := computeByMonth(trades)
	s.cache.Set(ctx, userID, name, stats)
	return stats, nil
}

// GetDashboard rolls totals up over all of a user's closed trades. Stored
// results are summed as-is, across journal currencies.
func (s *StatsService) GetDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	var cached Dashboard
	if s.cache.Get(ctx, userID, "dashboard", &cached) {
		return &cached, nil
	}

	trades, err := s.tradeRepo.ListClosedByUser(userID)
	if err != nil {
		return nil, err
	}

	d := computeDashboard(trades)
	s.cache.Set(ctx, userID, "dashboard", d)
	return d, nil
}

// BySymbol aggregates a user's closed trades per instrument symbol
func (s *StatsService) BySymbol(ctx context.Context, userID uint) ([]SymbolStats, error) {
	var cached []SymbolStats
	if s.cache.Get(ctx, userID, "by_symbol", &cached) {
		return cached, nil
	}

	trades, err := s.tradeRepo.ListClosedByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := computeBySymbol(trades)
	s.cache.Set(ctx, userID, "by_symbol", stats)
	return stats, nil
}

// ByTag aggregates a user's closed trades per tag, fanning multi-tag trades
// out into each of their tags
func (s *StatsService) ByTag(ctx context.Context, userID uint) ([]TagStats, error) {
	var cached []TagStats
	if s.cache.Get(ctx, userID, "by_tag", &cached) {
		return cached, nil
	}

	trades, err := s.tradeRepo.ListClosedByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := computeByTag(trades)
	s.cache.Set(ctx, userID, "by_tag", stats)
	return stats, nil
}

// ByHour aggregates a user's closed trades by the hour of their entry time
func (s *StatsService) ByHour(ctx context.Context, userID uint) ([]HourStats, error) {
	var cached []HourStats
	if s.cache.Get(ctx, userID, "by_hour", &cached) {
		return cached, nil
	}

	trades, err := s.tradeRepo.ListClosedByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := computeByHour(trades)
	s.cache.Set(ctx, userID, "by_hour", stats)
	return stats, nil
}

// ByMonth aggregates a user's closed trades by the month of their entry time
func (s *StatsService) ByMonth(ctx context.Context, userID uint) ([]MonthStats, error) {
	var cached []MonthStats
	if s.cache.Get(ctx, userID, "by_month", &cached) {
		return cached, nil
	}

	trades, err := s.tradeRepo.ListClosedByUser(userID)
	if err != nil {
		return nil, err
	}

	stats := computeByMonth(trades)
	s.cache.Set(ctx, userID, "by_month", stats)
	return stats, nil
}

// Ranking scores every participating user by gains / (gains + losses) * 100
// and returns the list best first. Users with no closed trades score zero.
func (s *StatsService) Ranking(ctx context.Context) ([]RankingEntry, error) {
	users, err := s.userRepo.ListParticipants()
	if err != nil {
		return nil, err
	}

	entries := make([]RankingEntry, 0, len(users))
	for i := range users {
		u := &users[i]
		gains, losses, err := s.tradeRepo.SumResults(u.ID)
		if err != nil {
			return nil, err
		}

		score := 0.0
		if total := gains + (-losses); total > 0 {
			score = gains / total * 100
		}
		entries = append(entries, RankingEntry{
			UserID: u.ID,
			Name:   u.FullName(),
			Score:  score,
		})
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Score > entries[j].Score })
	return entries, nil
}

// journalTrades proves the caller owns the journal and loads its closed trades
func (s *StatsService) journalTrades(journalID, userID uint) ([]models.Trade, error) {
	if _, err := s.journalRepo.GetForUser(journalID, userID); err != nil {
		if errors.Is(err, repository.ErrJournalNotFound) {
			return nil, ErrJournalAccess
		}
		return nil, err
	}
	return s.tradeRepo.ListClosedByJournal(journalID)
}

func computeDashboard(trades []models.Trade) *Dashboard {
	d := &Dashboard{}
	wins := 0
	for i := range trades {
		r := result(&trades[i])
		d.TotalTrades++
		if r > 0 {
			d.TotalGains += r
			wins++
		} else if r < 0 {
			d.TotalLosses += -r
		}
	}
	d.WinRate = rate(wins, d.TotalTrades)
	return d
}

func computeBySymbol(trades []models.Trade) []SymbolStats {
	type acc struct {
		count int
		wins  int
		total float64
	}
	buckets := map[string]*acc{}
	for i := range trades {
		t := &trades[i]
		a := buckets[t.Symbol]
		if a == nil {
			a = &acc{}
			buckets[t.Symbol] = a
		}
		r := result(t)
		a.count++
		a.total += r
		if r > 0 {
			a.wins++
		}
	}

	stats := make([]SymbolStats, 0, len(buckets))
	for symbol, a := range buckets {
		stats = append(stats, SymbolStats{
			Symbol:     symbol,
			TradeCount: a.count,
			Total:      a.total,
			WinRate:    rate(a.wins, a.count),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Symbol < stats[j].Symbol })
	return stats
}

func computeByTag(trades []models.Trade) []TagStats {
	type acc struct {
		count int
		wins  int
		total float64
	}
	buckets := map[string]*acc{}
	for i := range trades {
		t := &trades[i]
		r := result(t)
		for _, tag := range t.TagList() {
			a := buckets[tag]
			if a == nil {
				a = &acc{}
				buckets[tag] = a
			}
			a.count++
			a.total += r
			if r > 0 {
				a.wins++
			}
		}
	}

	stats := make([]TagStats, 0, len(buckets))
	for tag, a := range buckets {
		stats = append(stats, TagStats{
			Tag:        tag,
			TradeCount: a.count,
			Total:      a.total,
			WinRate:    rate(a.wins, a.count),
		})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Tag < stats[j].Tag })
	return stats
}

func computeByHour(trades []models.Trade) []HourStats {
	type acc struct {
		count int
		total float64
	}
	buckets := map[string]*acc{}
	for i := range trades {
		t := &trades[i]
		hour := fmt.Sprintf("%02d:00", t.EntryTime.Hour())
		a := buckets[hour]
		if a == nil {
			a = &acc{}
			buckets[hour] = a
		}
		a.count++
		a.total += result(t)
	}

	stats := make([]HourStats, 0, len(buckets))
	for hour, a := range buckets {
		stats = append(stats, HourStats{Hour: hour, TradeCount: a.count, Total: a.total})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Hour < stats[j].Hour })
	return stats
}

func computeByMonth(trades []models.Trade) []MonthStats {
	type acc struct {
		count int
		gains float64
	}
	buckets := map[string]*acc{}
	for i := range trades {
		t := &trades[i]
		month := t.EntryTime.Format("2006-01")
		a := buckets[month]
		if a == nil {
			a = &acc{}
			buckets[month] = a
		}
		a.count++
		a.gains += result(t)
	}

	stats := make([]MonthStats, 0, len(buckets))
	for month, a := range buckets {
		stats = append(stats, MonthStats{Month: month, Gains: a.gains, TradeCount: a.count})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Month < stats[j].Month })
	return stats
}

// result reads a closed trade's result, treating nil as zero
func result(t *models.Trade) float64 {
	if t.Result == nil {
		return 0
	}
	return *t.Result
}

// rate returns wins/count as a percentage, zero when count is zero
func rate(wins, count int) float64 {
	if count == 0 {
		return 0
	}
	return float64(wins) / float64(count) * 100
}
