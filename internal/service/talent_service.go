package service

import (
	"bytes"
	"context"
	"io"
	"strings"

	"github.com/gabriel-vasile/mimetype"

	"talenthub/internal/apperr"
	"talenthub/internal/config"
	"talenthub/internal/logger"
	"talenthub/internal/models"
	"talenthub/internal/repository"
	"talenthub/internal/storage"
)

type TalentService interface {
	Upload(ctx context.Context, req UploadTalentRequest) (*models.Talent, error)
	Remove(ctx context.Context, talentID string) error
}

type UploadTalentRequest struct {
	OwnerID     string
	Title       string
	Description string
	Category    string
	Tags        []string
	FileName    string
	File        io.Reader
	Size        int64
	ContentType string
}

type talentService struct {
	talents repository.TalentRepository
	storage storage.Storage
	cfg     *config.Config
	log     *logger.Logger
}

func NewTalentService(talents repository.TalentRepository, store storage.Storage, cfg *config.Config, log *logger.Logger) TalentService {
	return &talentService{talents: talents, storage: store, cfg: cfg, log: log}
}

// Upload validates the submission locally (size ceiling, required fields)
// before touching either store, uploads the media object, then inserts the
// talent row. A failed insert removes the just-uploaded object so the two
// stores stay in step.
func (s *talentService) Upload(ctx context.Context, req UploadTalentRequest) (*models.Talent, error) {
	if req.OwnerID == "" {
		return nil, apperr.ErrAuthRequired
	}
	if strings.TrimSpace(req.Title) == "" {
		return nil, apperr.Validation("title is required")
	}
	if !models.ValidCategory(req.Category) {
		return nil, apperr.Validation("unknown category %q", req.Category)
	}
	if req.Size > s.cfg.MaxUploadSize {
		return nil, apperr.Validation("file size %d exceeds the %d byte limit", req.Size, s.cfg.MaxUploadSize)
	}

	contentType := req.ContentType
	file := req.File
	if contentType == "" {
		head := make([]byte, 512)
		n, _ := io.ReadFull(file, head)
		contentType = mimetype.Detect(head[:n]).String()
		file = io.MultiReader(bytes.NewReader(head[:n]), file)
	}

	mediaType := models.MediaImage
	if strings.HasPrefix(contentType, "video/") {
		mediaType = models.MediaVideo
	}

	objectName, mediaURL, err := s.storage.Upload(ctx, req.OwnerID, req.FileName, file, req.Size, contentType)
	if err != nil {
		return nil, apperr.Store("uploading media", err)
	}

	talent := &models.Talent{
		OwnerID:     req.OwnerID,
		Title:       strings.TrimSpace(req.Title),
		Description: req.Description,
		Category:    req.Category,
		Tags:        req.Tags,
		MediaURL:    mediaURL,
		MediaType:   mediaType,
		ObjectName:  objectName,
	}

	if err := s.talents.Create(ctx, talent); err != nil {
		if cleanupErr := s.storage.Delete(ctx, objectName); cleanupErr != nil {
			s.log.Warnw("removing orphaned media object", "object", objectName, "error", cleanupErr)
		}
		return nil, err
	}

	return talent, nil
}

// Remove deletes the talent row and its media object. A failed object
// delete is logged and ignored; the row removal is what the feed observes.
func (s *talentService) Remove(ctx context.Context, talentID string) error {
	talent, err := s.talents.GetByID(ctx, talentID)
	if err != nil {
		return err
	}

	if talent.ObjectName != "" {
		if err := s.storage.Delete(ctx, talent.ObjectName); err != nil {
			s.log.Warnw("removing media object", "object", talent.ObjectName, "error", err)
		}
	}

	return s.talents.Delete(ctx, talentID)
}
