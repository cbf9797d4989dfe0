package services

import (
	"formpick/internal/models"
	"formpick/internal/providers"
	"formpick/internal/storage"
	"formpick/internal/structures"
	"strings"
)

type FeedbackServiceInterface interface {
	Submit(notes string, files map[models.PhotoKey]string) (models.FeedbackRequest, error)
	Request() (models.FeedbackRequest, bool)
	SaveCoachNote(note string) error
	CoachNote() string
}

// FeedbackService stores the member's photo submission and the coach's
// reply. Only file names are kept.
type FeedbackService struct {
	store     storage.RecordStore
	clock     providers.Clock
	minPhotos int
}

func NewFeedbackService(store storage.RecordStore, clock providers.Clock, conf *structures.Config) *FeedbackService {
	minPhotos := conf.Studio.MinPhotos
	if minPhotos <= 0 {
		minPhotos = 3
	}
	return &FeedbackService{store: store, clock: clock, minPhotos: minPhotos}
}

func (s *FeedbackService) Submit(notes string, files map[models.PhotoKey]string) (models.FeedbackRequest, error) {
	for key := range files {
		if _, ok := models.PhotoLabels[key]; !ok {
			return models.FeedbackRequest{}, models.ErrUnknownPhoto
		}
	}

	req := models.FeedbackRequest{
		SubmittedAt: s.clock.Now(),
		Notes:       strings.TrimSpace(notes),
		PhotoKeys:   make([]models.PhotoKey, 0, len(files)),
		FileNames:   make(map[models.PhotoKey]string, len(files)),
	}
	// slot order, not map order
	for _, key := range models.PhotoKeys {
		name, ok := files[key]
		if !ok || strings.TrimSpace(name) == "" {
			continue
		}
		req.PhotoKeys = append(req.PhotoKeys, key)
		req.FileNames[key] = strings.TrimSpace(name)
	}
	if len(req.PhotoKeys) < s.minPhotos {
		return models.FeedbackRequest{}, models.ErrNotEnoughPhotos
	}

	if err := storage.Write(s.store, storage.FeedbackRequest.Key(), req); err != nil {
		return models.FeedbackRequest{}, err
	}
	return req, nil
}

func (s *FeedbackService) Request() (models.FeedbackRequest, bool) {
	return storage.Lookup[models.FeedbackRequest](s.store, storage.FeedbackRequest.Key())
}

func (s *FeedbackService) SaveCoachNote(note string) error {
	return storage.Write(s.store, storage.CoachFeedback.Key(), note)
}

// CoachNote also accepts the bare text older profiles stored.
func (s *FeedbackService) CoachNote() string {
	if note, ok := storage.Lookup[string](s.store, storage.CoachFeedback.Key()); ok {
		return note
	}
	raw, _ := s.store.Get(storage.CoachFeedback.Key())
	return string(raw)
}
