package services

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/scentid/scentid-cli/internal/client/api"
	"github.com/scentid/scentid-cli/internal/client/models"
	"github.com/scentid/scentid-cli/internal/logging"
)

// ErrScanInProgress is returned by Run while a previous attempt has not yet
// settled. Overlapping submissions are rejected rather than queued.
var ErrScanInProgress = errors.New("a scan is already in progress")

// ScanPhase is the position of the current attempt in the linear workflow
// idle → acquiring → submitting → settled.
type ScanPhase string

const (
	PhaseIdle       ScanPhase = "idle"
	PhaseAcquiring  ScanPhase = "acquiring"
	PhaseSubmitting ScanPhase = "submitting"
	PhaseSettled    ScanPhase = "settled"
)

// ScanService drives the acquire-reading → submit → settled workflow.
// FetchResult and SubmitFeedback are independent reads/side channels and do
// not touch the workflow state.
type ScanService struct {
	mu  sync.Mutex
	api api.Client
	log logging.Logger

	phase   ScanPhase
	lastErr error
}

func NewScanService(apiClient api.Client, log logging.Logger) *ScanService {
	return &ScanService{api: apiClient, log: log, phase: PhaseIdle}
}

// Phase returns the current workflow phase.
func (s *ScanService) Phase() ScanPhase {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.phase
}

// Err returns the error the last attempt settled with, or nil.
func (s *ScanService) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.lastErr
}

func (s *ScanService) setPhase(phase ScanPhase) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = phase
}

func (s *ScanService) settle(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.phase = PhaseSettled
	s.lastErr = err
}

// Run executes one scan attempt: acquires a sensor reading, submits it, and
// returns the created scan's id for fetching the full result. Every path
// settles the attempt; nothing is retried.
func (s *ScanService) Run(ctx context.Context) (string, error) {
	s.mu.Lock()
	if s.phase == PhaseAcquiring || s.phase == PhaseSubmitting {
		s.mu.Unlock()
		return "", ErrScanInProgress
	}
	s.phase = PhaseAcquiring
	s.lastErr = nil
	s.mu.Unlock()

	reading, err := s.api.SimulateSensor(ctx)
	if err != nil {
		err = fmt.Errorf("failed to acquire sensor reading: %w", err)
		s.settle(err)
		return "", err
	}

	s.setPhase(PhaseSubmitting)

	scan, err := s.api.CreateScan(ctx, api.CreateScanRequest{
		VOCVector:   reading.VOCVector,
		DeviceID:    reading.DeviceID,
		Temperature: &reading.Temperature,
		Humidity:    &reading.Humidity,
	})
	if err != nil {
		err = fmt.Errorf("failed to submit scan: %w", err)
		s.settle(err)
		return "", err
	}

	s.log.Info(ctx, "scan submitted", "scan_id", scan.ID)
	s.settle(nil)
	return scan.ID, nil
}

// FetchResult loads a scan with its match results. A scan whose BestMatch is
// nil is a valid "no match" outcome; api.ErrNotFound means the scan itself
// does not exist.
func (s *ScanService) FetchResult(ctx context.Context, scanID string) (*models.Scan, error) {
	return s.api.GetScan(ctx, scanID)
}

// SubmitFeedback reports whether the best match was correct. It is
// fire-and-forget relative to the workflow state: failure is returned to the
// caller but reverts nothing.
func (s *ScanService) SubmitFeedback(ctx context.Context, scanID, fragranceID string, isCorrect bool) error {
	err := s.api.SubmitFeedback(ctx, api.FeedbackRequest{
		ScanID:      scanID,
		FragranceID: fragranceID,
		IsCorrect:   isCorrect,
	})
	if err != nil {
		return fmt.Errorf("failed to submit feedback: %w", err)
	}
	return nil
}

// History returns a page of the user's past scans.
func (s *ScanService) History(ctx context.Context, limit, offset int) ([]models.ScanHistoryItem, error) {
	return s.api.ScanHistory(ctx, limit, offset)
}

// Delete removes a scan from the history.
func (s *ScanService) Delete(ctx context.Context, scanID string) error {
	return s.api.DeleteScan(ctx, scanID)
}
