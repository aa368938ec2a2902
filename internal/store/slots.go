package store

import (
	"sync"

	"workerguard-console/internal/domain"
)

// Slots is the per-tab cache of the most recently fetched, normalized backend
// payload. Every write is a full-slot replacement, never a merge, except
// PatchRatio, which is the single-index path for the optimistic slider.
//
// Mutations are expected from the single UI goroutine; the mutex only keeps
// concurrent test readers and the render path from observing torn writes.
type Slots struct {
	mu        sync.RWMutex
	risk      domain.RiskBoard
	analytics []domain.CenterTrend
	workers   []domain.Worker
	payroll   []domain.PayrollEntry
	sms       []domain.SMSMessage
	settings  []domain.JobSetting
	detail    []domain.WorkDetail
}

func NewSlots() *Slots {
	return &Slots{risk: domain.RiskBoard{}}
}

func (s *Slots) SetRisk(board domain.RiskBoard) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if board == nil {
		board = domain.RiskBoard{}
	}
	s.risk = board
}

func (s *Slots) Risk() domain.RiskBoard {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.risk
}

func (s *Slots) SetAnalytics(trends []domain.CenterTrend) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.analytics = trends
}

func (s *Slots) Analytics() []domain.CenterTrend {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.analytics
}

func (s *Slots) SetWorkers(workers []domain.Worker) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workers = workers
}

func (s *Slots) Workers() []domain.Worker {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.workers
}

func (s *Slots) SetPayroll(entries []domain.PayrollEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.payroll = entries
}

func (s *Slots) Payroll() []domain.PayrollEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.payroll
}

func (s *Slots) SetSMS(messages []domain.SMSMessage) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sms = messages
}

func (s *Slots) SMS() []domain.SMSMessage {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sms
}

func (s *Slots) SetSettings(settings []domain.JobSetting) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.settings = settings
}

func (s *Slots) Settings() []domain.JobSetting {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.JobSetting, len(s.settings))
	copy(out, s.settings)
	return out
}

// PatchRatio replaces a single job's ratio in place and reports the value it
// overwrote. ok is false when the index is out of range.
func (s *Slots) PatchRatio(index, ratio int) (prev int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.settings) {
		return 0, false
	}
	prev = s.settings[index].Ratio
	s.settings[index].Ratio = ratio
	return prev, true
}

// RestoreRatio puts a job's ratio back by name after a failed commit. The
// lookup is by name rather than index because a refetch may have reordered
// the slot in between.
func (s *Slots) RestoreRatio(jobName string, ratio int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.settings {
		if s.settings[i].JobName == jobName {
			s.settings[i].Ratio = ratio
			return
		}
	}
}

func (s *Slots) SetDetail(details []domain.WorkDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.detail = details
}

func (s *Slots) Detail() []domain.WorkDetail {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.detail
}
