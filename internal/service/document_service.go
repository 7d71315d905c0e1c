package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/pkg/logger"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
	"legal-assistant-be/pkg/privacy"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// IDocumentService ingests court decisions, queues them for embedding, and
// exposes read access to the corpus.
type IDocumentService interface {
	CreateDecision(ctx context.Context, request *dto.CreateDecisionRequest) (*dto.CreateDecisionResponse, error)
	ListDecisions(ctx context.Context, query string, limit int) (*dto.DecisionListResponse, error)
	GetDecision(ctx context.Context, id uuid.UUID) (*dto.DecisionDetailResponse, error)
	ListStatutes(ctx context.Context, query string, limit int) (*dto.StatuteListResponse, error)
}

type documentService struct {
	uowFactory       unitofwork.RepositoryFactory
	publisherService IPublisherService
	logger           logger.ILogger
}

func NewDocumentService(
	uowFactory unitofwork.RepositoryFactory,
	publisherService IPublisherService,
	log logger.ILogger,
) IDocumentService {
	return &documentService{
		uowFactory:       uowFactory,
		publisherService: publisherService,
		logger:           log,
	}
}

func (s *documentService) CreateDecision(ctx context.Context, request *dto.CreateDecisionRequest) (*dto.CreateDecisionResponse, error) {
	var decisionDate *time.Time
	if request.DecisionDate != "" {
		parsed, err := time.Parse("2006-01-02", request.DecisionDate)
		if err != nil {
			return nil, fmt.Errorf("invalid decision_date %q: %w", request.DecisionDate, err)
		}
		decisionDate = &parsed
	}

	// Applicant names are personal data even in published rulings; mask them
	// at the door so nothing downstream has to remember to.
	meta := privacy.SanitizeRecord(map[string]interface{}{
		"basvurucu": request.Applicant,
	})
	applicant, _ := meta["basvurucu"].(string)

	decision := entity.Decision{
		Id:           uuid.New(),
		Title:        request.Title,
		Court:        request.Court,
		DecisionDate: decisionDate,
		FilingNo:     request.FilingNo,
		Applicant:    applicant,
		Summary:      request.Summary,
		FullText:     request.FullText,
		CreatedAt:    time.Now(),
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	if err := uow.DecisionRepository().Create(ctx, &decision); err != nil {
		return nil, err
	}

	msgPayload := dto.PublishEmbedDecisionMessage{DecisionId: decision.Id}
	msgJson, err := json.Marshal(msgPayload)
	if err != nil {
		return nil, err
	}
	if err := s.publisherService.Publish(ctx, msgJson); err != nil {
		// The decision exists, it just has no embeddings yet; lexical search
		// still finds it.
		s.logger.Error("Document", "Failed to queue decision for embedding", map[string]interface{}{
			"decisionId": decision.Id.String(),
			"error":      err.Error(),
		})
	}

	s.logger.Info("Document", "Decision ingested", map[string]interface{}{
		"decisionId": decision.Id.String(),
		"title":      decision.Title,
	})

	return &dto.CreateDecisionResponse{Id: decision.Id}, nil
}

// ListDecisions browses the corpus. With a query it ranks lexically; without
// one it returns the most recently ingested decisions.
func (s *documentService) ListDecisions(ctx context.Context, query string, limit int) (*dto.DecisionListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	var decisions []*entity.Decision
	var err error
	if query != "" {
		decisions, err = uow.DecisionRepository().SearchLexical(ctx, query, limit)
	} else {
		decisions, err = uow.DecisionRepository().Find(ctx,
			specification.OrderBy{Field: "created_at", Desc: true},
			specification.Pagination{Limit: limit},
		)
	}
	if err != nil {
		return nil, err
	}

	responses := make([]*dto.DecisionResponse, len(decisions))
	for i, d := range decisions {
		responses[i] = decisionToDTO(d)
	}
	return &dto.DecisionListResponse{Decisions: responses}, nil
}

func (s *documentService) GetDecision(ctx context.Context, id uuid.UUID) (*dto.DecisionDetailResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	decision, err := uow.DecisionRepository().FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if decision == nil {
		return nil, fiber.NewError(fiber.StatusNotFound, "Karar bulunamadı")
	}

	return &dto.DecisionDetailResponse{
		Decision: decisionToDTO(decision),
		FullText: decision.FullText,
	}, nil
}

func (s *documentService) ListStatutes(ctx context.Context, query string, limit int) (*dto.StatuteListResponse, error) {
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	constitution, err := uow.StatuteRepository().SearchConstitution(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	penalCode, err := uow.StatuteRepository().SearchPenalCode(ctx, query, limit)
	if err != nil {
		return nil, err
	}

	response := &dto.StatuteListResponse{
		Constitution: make([]*dto.ConstitutionArticleDTO, len(constitution)),
		PenalCode:    make([]*dto.PenalCodeArticleDTO, len(penalCode)),
	}
	for i, a := range constitution {
		response.Constitution[i] = &dto.ConstitutionArticleDTO{
			Id:        a.Id,
			ArticleNo: a.ArticleNo,
			Title:     a.Title,
			Content:   a.Content,
			Rationale: a.Rationale,
		}
	}
	for i, a := range penalCode {
		response.PenalCode[i] = &dto.PenalCodeArticleDTO{
			Id:        a.Id,
			ArticleNo: a.ArticleNo,
			Title:     a.Title,
			Content:   a.Content,
		}
	}
	return response, nil
}

func decisionToDTO(d *entity.Decision) *dto.DecisionResponse {
	return &dto.DecisionResponse{
		Id:           d.Id,
		Title:        d.Title,
		Court:        d.Court,
		DecisionDate: d.DecisionDate,
		FilingNo:     d.FilingNo,
		Applicant:    d.Applicant,
		Summary:      d.Summary,
		CreatedAt:    d.CreatedAt,
	}
}
