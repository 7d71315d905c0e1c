package service

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"legal-assistant-be/internal/dto"
	"legal-assistant-be/internal/entity"
	"legal-assistant-be/internal/repository/contract"
	"legal-assistant-be/internal/repository/specification"
	"legal-assistant-be/internal/repository/unitofwork"
)

type docStore struct {
	decisions     map[uuid.UUID]*entity.Decision
	constitution  []*entity.ConstitutionArticle
	penalCode     []*entity.PenalCodeArticle
	lexicalQuery  string
	lexicalCalled bool
	findCalled    bool
}

func newDocStore() *docStore {
	return &docStore{decisions: make(map[uuid.UUID]*entity.Decision)}
}

type docUow struct {
	store *docStore
}

func (u *docUow) Begin(ctx context.Context) error { return nil }
func (u *docUow) Commit() error                   { return nil }
func (u *docUow) Rollback() error                 { return nil }

func (u *docUow) ConversationRepository() contract.ConversationRepository   { return nil }
func (u *docUow) MessageRepository() contract.MessageRepository             { return nil }
func (u *docUow) DecisionChunkRepository() contract.DecisionChunkRepository { return nil }

func (u *docUow) DecisionRepository() contract.DecisionRepository {
	return &docDecisionRepo{store: u.store}
}
func (u *docUow) StatuteRepository() contract.StatuteRepository {
	return &docStatuteRepo{store: u.store}
}

type docFactory struct {
	store *docStore
}

func (f *docFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &docUow{store: f.store}
}

type docDecisionRepo struct {
	store *docStore
}

func (r *docDecisionRepo) Create(ctx context.Context, d *entity.Decision) error {
	r.store.decisions[d.Id] = d
	return nil
}

func (r *docDecisionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Decision, error) {
	return r.store.decisions[id], nil
}

func (r *docDecisionRepo) Find(ctx context.Context, specs ...specification.Specification) ([]*entity.Decision, error) {
	r.store.findCalled = true
	var out []*entity.Decision
	for _, d := range r.store.decisions {
		out = append(out, d)
	}
	return out, nil
}

func (r *docDecisionRepo) SearchLexical(ctx context.Context, query string, limit int) ([]*entity.Decision, error) {
	r.store.lexicalCalled = true
	r.store.lexicalQuery = query
	var out []*entity.Decision
	for _, d := range r.store.decisions {
		out = append(out, d)
	}
	return out, nil
}

type docStatuteRepo struct {
	store *docStore
}

func (r *docStatuteRepo) CreateConstitutionArticle(ctx context.Context, a *entity.ConstitutionArticle) error {
	return nil
}
func (r *docStatuteRepo) CreatePenalCodeArticle(ctx context.Context, a *entity.PenalCodeArticle) error {
	return nil
}
func (r *docStatuteRepo) SearchConstitution(ctx context.Context, query string, limit int) ([]*entity.ConstitutionArticle, error) {
	return r.store.constitution, nil
}
func (r *docStatuteRepo) SearchPenalCode(ctx context.Context, query string, limit int) ([]*entity.PenalCodeArticle, error) {
	return r.store.penalCode, nil
}

type capturePublisher struct {
	payloads [][]byte
	err      error
}

func (p *capturePublisher) Publish(ctx context.Context, payload []byte) error {
	if p.err != nil {
		return p.err
	}
	p.payloads = append(p.payloads, payload)
	return nil
}

func newDocumentFixture(publisher IPublisherService) (*docStore, IDocumentService) {
	store := newDocStore()
	svc := NewDocumentService(&docFactory{store: store}, publisher, noopLogger{})
	return store, svc
}

func TestCreateDecisionMasksApplicantAndPublishes(t *testing.T) {
	publisher := &capturePublisher{}
	store, svc := newDocumentFixture(publisher)

	res, err := svc.CreateDecision(context.Background(), &dto.CreateDecisionRequest{
		Title:        "İhlal kararı",
		Court:        "Anayasa Mahkemesi",
		DecisionDate: "2023-05-17",
		Applicant:    "Ahmet Yılmaz",
		FullText:     "Karar metni.",
	})
	require.NoError(t, err)

	stored := store.decisions[res.Id]
	require.NotNil(t, stored)
	assert.Equal(t, "A**** Y*****", stored.Applicant)
	require.NotNil(t, stored.DecisionDate)
	assert.Equal(t, "17.05.2023", stored.DecisionDate.Format("02.01.2006"))

	require.Len(t, publisher.payloads, 1)
	var msg dto.PublishEmbedDecisionMessage
	require.NoError(t, json.Unmarshal(publisher.payloads[0], &msg))
	assert.Equal(t, res.Id, msg.DecisionId)
}

func TestCreateDecisionPublishFailureStillCreates(t *testing.T) {
	publisher := &capturePublisher{err: errors.New("bus down")}
	store, svc := newDocumentFixture(publisher)

	res, err := svc.CreateDecision(context.Background(), &dto.CreateDecisionRequest{
		Title:    "Karar",
		FullText: "Metin",
	})
	require.NoError(t, err)
	assert.NotNil(t, store.decisions[res.Id])
}

func TestCreateDecisionRejectsBadDate(t *testing.T) {
	_, svc := newDocumentFixture(&capturePublisher{})

	_, err := svc.CreateDecision(context.Background(), &dto.CreateDecisionRequest{
		Title:        "Karar",
		DecisionDate: "17.05.2023",
		FullText:     "Metin",
	})
	require.Error(t, err)
}

func TestListDecisionsRoutesByQuery(t *testing.T) {
	store, svc := newDocumentFixture(&capturePublisher{})
	d := &entity.Decision{Id: uuid.New(), Title: "Karar"}
	store.decisions[d.Id] = d

	res, err := svc.ListDecisions(context.Background(), "", 0)
	require.NoError(t, err)
	assert.Len(t, res.Decisions, 1)
	assert.True(t, store.findCalled)
	assert.False(t, store.lexicalCalled)

	_, err = svc.ListDecisions(context.Background(), "yargılanma", 0)
	require.NoError(t, err)
	assert.True(t, store.lexicalCalled)
	assert.Equal(t, "yargılanma", store.lexicalQuery)
}

func TestGetDecisionNotFound(t *testing.T) {
	_, svc := newDocumentFixture(&capturePublisher{})

	_, err := svc.GetDecision(context.Background(), uuid.New())

	var fiberErr *fiber.Error
	require.ErrorAs(t, err, &fiberErr)
	assert.Equal(t, fiber.StatusNotFound, fiberErr.Code)
}

func TestListStatutesCombinesSections(t *testing.T) {
	store, svc := newDocumentFixture(&capturePublisher{})
	store.constitution = []*entity.ConstitutionArticle{
		{Id: uuid.New(), ArticleNo: 36, Title: "Hak arama hürriyeti", Content: "..."},
	}
	store.penalCode = []*entity.PenalCodeArticle{
		{Id: uuid.New(), ArticleNo: 135, Title: "Kişisel verilerin kaydedilmesi", Content: "..."},
	}

	res, err := svc.ListStatutes(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, res.Constitution, 1)
	require.Len(t, res.PenalCode, 1)
	assert.Equal(t, 36, res.Constitution[0].ArticleNo)
	assert.Equal(t, 135, res.PenalCode[0].ArticleNo)
}
