package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"startup-compliance-be/internal/config"
	"startup-compliance-be/internal/dto"
	"startup-compliance-be/internal/entity"
	"startup-compliance-be/internal/pkg/logger"
	"startup-compliance-be/internal/repository/implementation"
	"startup-compliance-be/internal/repository/memory"
	"startup-compliance-be/internal/repository/specification"
	"startup-compliance-be/internal/repository/unitofwork"
	"startup-compliance-be/pkg/events"
	"startup-compliance-be/pkg/guidance"
	"startup-compliance-be/pkg/lock"
	"startup-compliance-be/pkg/markdown"
	pktNats "startup-compliance-be/pkg/nats"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/message"
	"github.com/google/uuid"
)

// ErrAbsorptionInProgress means another absorption holds this owner's lock.
var ErrAbsorptionInProgress = errors.New("an absorption is already running for this user")

type IGuidanceService interface {
	Absorb(ctx context.Context, userId uuid.UUID, req *dto.AbsorbGuidanceRequest) (*dto.AbsorbGuidanceResponse, error)
}

type guidanceService struct {
	uowFactory     unitofwork.RepositoryFactory
	classifier     *guidance.Classifier
	complianceName string
	log            logger.ILogger
	publisher      message.Publisher
	eventPublisher *pktNats.Publisher
	ownerLock      *lock.OwnerLock
	summaryCache   *memory.SummaryRepository
}

func NewGuidanceService(
	uowFactory unitofwork.RepositoryFactory,
	cfg config.GuidanceConfig,
	log logger.ILogger,
	publisher message.Publisher,
	eventPublisher *pktNats.Publisher,
	ownerLock *lock.OwnerLock,
	summaryCache *memory.SummaryRepository,
) IGuidanceService {
	keywords := guidance.DefaultKeywords()
	if cfg.ComplianceKeywords != nil {
		keywords.Compliance = cfg.ComplianceKeywords
	}
	if cfg.DocumentKeywords != nil {
		keywords.Document = cfg.DocumentKeywords
	}
	if cfg.DocumentExtraKeywords != nil {
		keywords.DocumentExtras = cfg.DocumentExtraKeywords
	}

	complianceName := cfg.ComplianceChecklistName
	if complianceName == "" {
		complianceName = "Compliance Dashboard"
	}

	return &guidanceService{
		uowFactory:     uowFactory,
		classifier:     guidance.NewClassifier(keywords),
		complianceName: complianceName,
		log:            log,
		publisher:      publisher,
		eventPublisher: eventPublisher,
		ownerLock:      ownerLock,
		summaryCache:   summaryCache,
	}
}

// Absorb converts one guidance document into persisted checklists, items and
// required-document records for the owner, exactly once. Re-absorbing the
// same document is a no-op signalled via AlreadyExisted; persistence failures
// roll back and are signalled via Success=false, never via a panic or an
// unhandled error.
func (c *guidanceService) Absorb(ctx context.Context, userId uuid.UUID, req *dto.AbsorbGuidanceRequest) (*dto.AbsorbGuidanceResponse, error) {
	if c.ownerLock != nil {
		release, ok, err := c.ownerLock.Acquire(ctx, userId)
		if err != nil {
			// Lock backend down: degrade to unserialized absorption.
			c.log.Warn("GuidanceService", "owner lock unavailable, proceeding without it", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		} else if !ok {
			return nil, ErrAbsorptionInProgress
		} else {
			defer release()
		}
	}

	parsed := c.classifier.Classify(markdown.Parse(req.GuidanceMarkdown))
	c.log.Info("GuidanceService", "classified guidance document", map[string]interface{}{
		"user_id":          userId,
		"sections":         len(parsed.Sections),
		"compliance_items": len(parsed.ComplianceChecklist),
		"document_matches": len(parsed.DocumentRequirements),
	})

	uow := c.uowFactory.NewUnitOfWork(ctx)

	alreadyExisted, err := c.checkExisting(ctx, uow, userId, parsed)
	if err != nil {
		return c.failure(userId, "idempotence check", err), nil
	}
	if alreadyExisted {
		return &dto.AbsorbGuidanceResponse{Success: true, AlreadyExisted: true}, nil
	}

	// Nothing extracted: a valid outcome, not an error. No records and no
	// activity entry are written.
	if len(parsed.Sections) == 0 && len(parsed.ComplianceChecklist) == 0 && len(parsed.DocumentRequirements) == 0 {
		return &dto.AbsorbGuidanceResponse{Success: true}, nil
	}

	response, err := c.persist(ctx, uow, userId, parsed)
	if err != nil {
		if errors.Is(err, implementation.ErrChecklistNameTaken) {
			// A concurrent absorption won the unique index race.
			return &dto.AbsorbGuidanceResponse{Success: true, AlreadyExisted: true}, nil
		}
		return c.failure(userId, "persist", err), nil
	}

	if c.summaryCache != nil {
		c.summaryCache.Invalidate(userId)
	}
	c.publishAbsorbed(ctx, userId, parsed)

	return response, nil
}

// checkExisting is the idempotence guard: any checklist name produced by this
// document already present for the owner blocks the whole absorption. This is
// deliberately all-or-nothing at document granularity.
func (c *guidanceService) checkExisting(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, parsed guidance.ParsedGuidance) (bool, error) {
	names := []string{c.complianceName}
	for _, section := range parsed.Sections {
		names = append(names, section.Title)
	}

	count, err := uow.ChecklistRepository().Count(ctx,
		specification.OwnedByUser{UserID: userId},
		specification.ByNames{Names: names},
	)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (c *guidanceService) persist(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, parsed guidance.ParsedGuidance) (*dto.AbsorbGuidanceResponse, error) {
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	created := dto.CreatedItems{}

	rollback := func(err error) error {
		if rbErr := uow.Rollback(); rbErr != nil {
			c.log.Error("GuidanceService", "rollback failed", map[string]interface{}{
				"user_id": userId,
				"error":   rbErr.Error(),
			})
		}
		return err
	}

	for _, section := range parsed.Sections {
		pair, err := c.createChecklist(ctx, uow, userId, section.Title, section.ChecklistItems)
		if err != nil {
			return nil, rollback(err)
		}
		created.Checklists = append(created.Checklists, *pair)
	}

	if len(parsed.ComplianceChecklist) > 0 {
		pair, err := c.createChecklist(ctx, uow, userId, c.complianceName, parsed.ComplianceChecklist)
		if err != nil {
			return nil, rollback(err)
		}
		created.ComplianceChecklist = pair
	}

	if len(parsed.DocumentRequirements) > 0 {
		documents, err := c.createDocuments(ctx, uow, userId, parsed.DocumentRequirements)
		if err != nil {
			return nil, rollback(err)
		}
		created.Documents = documents
	}

	activity := entity.RecentActivity{
		Id:           uuid.New(),
		UserId:       userId,
		ActivityType: "guidance_absorbed",
		Description:  "Absorbed startup guidance into dashboard",
		Timestamp:    time.Now(),
		CreatedAt:    time.Now(),
	}
	if err := uow.RecentActivityRepository().Create(ctx, &activity); err != nil {
		return nil, rollback(err)
	}

	if err := uow.Commit(); err != nil {
		return nil, err
	}

	navigateTo := c.complianceName
	if len(parsed.Sections) > 0 {
		navigateTo = parsed.Sections[0].Title
	}

	return &dto.AbsorbGuidanceResponse{
		Success:      true,
		CreatedItems: created,
		NavigateTo:   navigateTo,
	}, nil
}

func (c *guidanceService) createChecklist(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, name string, itemTexts []string) (*dto.CreatedChecklist, error) {
	checklist := entity.Checklist{
		Id:        uuid.New(),
		UserId:    userId,
		Name:      name,
		Progress:  0,
		CreatedAt: time.Now(),
	}
	if err := uow.ChecklistRepository().Create(ctx, &checklist); err != nil {
		return nil, err
	}

	items := make([]*entity.ChecklistItem, len(itemTexts))
	for i, text := range itemTexts {
		items[i] = &entity.ChecklistItem{
			Id:          uuid.New(),
			ChecklistId: checklist.Id,
			Text:        text,
			Completed:   false,
			OrderIndex:  i,
			CreatedAt:   time.Now(),
		}
	}
	if err := uow.ChecklistItemRepository().CreateBatch(ctx, items); err != nil {
		return nil, err
	}

	pair := dto.CreatedChecklist{
		Checklist: dto.ChecklistResponse{
			Id:        checklist.Id,
			Name:      checklist.Name,
			Progress:  checklist.Progress,
			CreatedAt: checklist.CreatedAt,
			UpdatedAt: checklist.UpdatedAt,
		},
	}
	for _, item := range items {
		pair.Items = append(pair.Items, dto.ChecklistItemResponse{
			Id:          item.Id,
			ChecklistId: item.ChecklistId,
			Text:        item.Text,
			Completed:   item.Completed,
			OrderIndex:  item.OrderIndex,
		})
	}
	return &pair, nil
}

func (c *guidanceService) createDocuments(ctx context.Context, uow unitofwork.UnitOfWork, userId uuid.UUID, requirements []string) ([]dto.DocumentResponse, error) {
	// Deduplicate here, at the point of persistence, preserving first-seen
	// order. Extraction keeps duplicates so its counts stay debuggable.
	seen := make(map[string]struct{}, len(requirements))
	var unique []string
	for _, name := range requirements {
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}
		unique = append(unique, name)
	}

	now := time.Now()
	documents := make([]*entity.Document, len(unique))
	for i, name := range unique {
		documents[i] = &entity.Document{
			Id:           uuid.New(),
			UserId:       userId,
			Name:         name,
			DocumentType: "Required Document",
			UploadDate:   now,
			FilePath:     nil,
			Metadata: map[string]interface{}{
				"status":      "Required",
				"description": "Required document from compliance guidance",
			},
			CreatedAt: now,
		}
	}
	if err := uow.DocumentRepository().CreateBatch(ctx, documents); err != nil {
		return nil, err
	}

	responses := make([]dto.DocumentResponse, len(documents))
	for i, d := range documents {
		responses[i] = dto.DocumentResponse{
			Id:           d.Id,
			Name:         d.Name,
			DocumentType: d.DocumentType,
			UploadDate:   d.UploadDate,
			FilePath:     d.FilePath,
			Metadata:     d.Metadata,
		}
	}
	return responses, nil
}

func (c *guidanceService) failure(userId uuid.UUID, step string, err error) *dto.AbsorbGuidanceResponse {
	c.log.Error("GuidanceService", "guidance absorption failed", map[string]interface{}{
		"user_id": userId,
		"step":    step,
		"error":   err.Error(),
	})
	return &dto.AbsorbGuidanceResponse{Success: false}
}

// publishAbsorbed fans the absorption out to the in-process bus (alerts) and
// the external NATS bus. Both are auxiliary: failures are logged, never
// surfaced to the caller.
func (c *guidanceService) publishAbsorbed(ctx context.Context, userId uuid.UUID, parsed guidance.ParsedGuidance) {
	payload := events.GuidanceAbsorbedPayload{
		UserId:              userId.String(),
		ComplianceItemCount: len(parsed.ComplianceChecklist),
	}
	for _, section := range parsed.Sections {
		payload.SectionTitles = append(payload.SectionTitles, section.Title)
	}
	payload.DocumentNames = parsed.DocumentRequirements

	data, err := json.Marshal(payload)
	if err != nil {
		c.log.Error("GuidanceService", "failed to marshal absorption event", map[string]interface{}{
			"user_id": userId,
			"error":   err.Error(),
		})
		return
	}

	if c.publisher != nil {
		msg := message.NewMessage(watermill.NewUUID(), data)
		if err := c.publisher.Publish(events.TopicGuidanceAbsorbed, msg); err != nil {
			c.log.Warn("GuidanceService", "failed to publish absorption event", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}

	if c.eventPublisher != nil {
		evt := events.BaseEvent{
			Type: events.TypeGuidanceAbsorbed,
			Data: map[string]interface{}{
				"user_id":        payload.UserId,
				"section_titles": payload.SectionTitles,
			},
			OccurredAt: time.Now(),
		}
		if err := c.eventPublisher.Publish(ctx, evt); err != nil {
			c.log.Warn("GuidanceService", "failed to publish NATS absorption event", map[string]interface{}{
				"user_id": userId,
				"error":   err.Error(),
			})
		}
	}
}
