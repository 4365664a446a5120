package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"testing"

	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/contract"
	"fit-buddy-be/internal/repository/specification"
	"fit-buddy-be/internal/repository/unitofwork"
	"fit-buddy-be/pkg/iot"
	"fit-buddy-be/pkg/llm"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakeDictionaryRepo struct {
	machines  []*entity.Machine
	exercises []*entity.Exercise
}

func (f *fakeDictionaryRepo) GetMachines(ctx context.Context) ([]*entity.Machine, error) {
	return f.machines, nil
}

func (f *fakeDictionaryRepo) GetExercises(ctx context.Context, specs ...specification.Specification) ([]*entity.Exercise, error) {
	muscleGroup := ""
	for _, s := range specs {
		if mg, ok := s.(specification.ByMuscleGroup); ok {
			muscleGroup = mg.MuscleGroup
		}
	}
	var out []*entity.Exercise
	for _, e := range f.exercises {
		if muscleGroup == "" || e.MuscleGroup == muscleGroup {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeDictionaryRepo) GetExerciseById(ctx context.Context, id uuid.UUID) (*entity.Exercise, error) {
	for _, e := range f.exercises {
		if e.Id == id {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeDictionaryRepo) GetExerciseByName(ctx context.Context, name string) (*entity.Exercise, error) {
	for _, e := range f.exercises {
		if strings.EqualFold(e.Name, name) {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeDictionaryRepo) CreateExercise(ctx context.Context, exercise *entity.Exercise) error {
	f.exercises = append(f.exercises, exercise)
	return nil
}

type fakeUnitOfWork struct {
	dictionary *fakeDictionaryRepo
}

func (f *fakeUnitOfWork) Begin(ctx context.Context) error { return nil }
func (f *fakeUnitOfWork) Commit() error                   { return nil }
func (f *fakeUnitOfWork) Rollback() error                 { return nil }

func (f *fakeUnitOfWork) ProfileRepository() contract.ProfileRepository       { return nil }
func (f *fakeUnitOfWork) DictionaryRepository() contract.DictionaryRepository { return f.dictionary }
func (f *fakeUnitOfWork) ProgramRepository() contract.ProgramRepository       { return nil }
func (f *fakeUnitOfWork) SessionRepository() contract.SessionRepository       { return nil }
func (f *fakeUnitOfWork) KnowledgeItemRepository() contract.KnowledgeItemRepository {
	return nil
}

type fakeFactory struct {
	uow unitofwork.UnitOfWork
}

func (f *fakeFactory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork { return f.uow }

// fakeEstimator maps machine ids to wait minutes; unknown ids count as busy.
type fakeEstimator struct {
	waits map[string]int
}

func (f *fakeEstimator) ListMachines(ctx context.Context) ([]iot.Machine, error) { return nil, nil }

func (f *fakeEstimator) PredictWait(ctx context.Context, machineID string) (*iot.Prediction, error) {
	return nil, errors.New("not used")
}

func (f *fakeEstimator) EstimateWait(ctx context.Context, machineIDs []string) (int, string) {
	if len(machineIDs) == 0 {
		return 0, iot.DatasetSourceFallback
	}
	minWait := -1
	for _, id := range machineIDs {
		wait, ok := f.waits[id]
		if !ok {
			wait = 60
		}
		if minWait == -1 || wait < minWait {
			minWait = wait
		}
	}
	return minWait, iot.DatasetSourceLive
}

type fakeSwapSearcher struct {
	items  []*entity.KnowledgeItem
	called bool
}

func (f *fakeSwapSearcher) Search(ctx context.Context, query string, limit int, sourceType string) []*entity.KnowledgeItem {
	f.called = true
	return f.items
}

type fakeSwapLLM struct {
	response string
	err      error
	called   bool
}

func (f *fakeSwapLLM) Chat(ctx context.Context, history []llm.Message, options ...llm.Option) (string, error) {
	f.called = true
	return f.response, f.err
}

func (f *fakeSwapLLM) Generate(ctx context.Context, prompt string, options ...llm.Option) (string, error) {
	f.called = true
	return f.response, f.err
}

type adaptationUnitOfWork struct {
	fakeUnitOfWork
	profiles *fakeProfileRepo
	sessions *fakeSessionRepo
}

func (u *adaptationUnitOfWork) ProfileRepository() contract.ProfileRepository { return u.profiles }
func (u *adaptationUnitOfWork) SessionRepository() contract.SessionRepository { return u.sessions }

type adaptationFixture struct {
	userId      uuid.UUID
	benchPress  *entity.Exercise
	dumbbell    *entity.Exercise
	squat       *entity.Exercise
	benchMach   *entity.Machine
	dbBenchMach *entity.Machine
	squatMach   *entity.Machine
	repo        *fakeDictionaryRepo
	sessions    *fakeSessionRepo
}

func machineType(t string) *string { return &t }

func newAdaptationFixture() *adaptationFixture {
	fx := &adaptationFixture{userId: uuid.New()}
	fx.benchMach = &entity.Machine{Id: uuid.New(), Name: "Bench Press 1", MachineTypeId: "BENCH_PRESS", IsActive: true}
	fx.dbBenchMach = &entity.Machine{Id: uuid.New(), Name: "DB Bench", MachineTypeId: "DB_BENCH", IsActive: true}
	fx.squatMach = &entity.Machine{Id: uuid.New(), Name: "Squat Rack 1", MachineTypeId: "SQUAT_RACK", IsActive: true}

	fx.dumbbell = &entity.Exercise{
		Id:            uuid.New(),
		Name:          "Dumbbell Bench Press",
		MuscleGroup:   "chest",
		MachineTypeId: machineType("DB_BENCH"),
	}
	fx.squat = &entity.Exercise{
		Id:            uuid.New(),
		Name:          "Barbell Squat",
		MuscleGroup:   "legs",
		MachineTypeId: machineType("SQUAT_RACK"),
	}
	fx.benchPress = &entity.Exercise{
		Id:            uuid.New(),
		Name:          "Barbell Bench Press",
		MuscleGroup:   "chest",
		MachineTypeId: machineType("BENCH_PRESS"),
		Alternatives:  []uuid.UUID{fx.dumbbell.Id},
	}

	fx.repo = &fakeDictionaryRepo{
		machines:  []*entity.Machine{fx.benchMach, fx.dbBenchMach, fx.squatMach},
		exercises: []*entity.Exercise{fx.benchPress, fx.dumbbell, fx.squat},
	}
	fx.sessions = newFakeSessionRepo()
	return fx
}

func newAdaptationService(fx *adaptationFixture, estimator iot.WaitEstimator, searcher *fakeSwapSearcher, provider *fakeSwapLLM) IAdaptationService {
	uow := &adaptationUnitOfWork{
		fakeUnitOfWork: fakeUnitOfWork{dictionary: fx.repo},
		profiles: &fakeProfileRepo{profiles: map[uuid.UUID]*entity.UserProfile{
			fx.userId: {
				UserId: fx.userId,
				OnboardingData: map[string]interface{}{
					"goal":             "muscle_gain",
					"experience_level": "beginner",
				},
			},
		}},
		sessions: fx.sessions,
	}
	return NewAdaptationService(
		&fakeFactory{uow: uow},
		estimator,
		searcher,
		provider,
		5,
		log.New(&strings.Builder{}, "", 0),
	)
}

func TestCheckAvailabilityUnknownExercise(t *testing.T) {
	fx := newAdaptationFixture()
	svc := newAdaptationService(fx, &fakeEstimator{}, &fakeSwapSearcher{}, &fakeSwapLLM{})

	_, err := svc.CheckAvailability(context.Background(), fx.userId, uuid.New())

	var ferr *fiber.Error
	if !errors.As(err, &ferr) || ferr.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want fiber 404", err)
	}
}

func TestCheckAvailabilityFreeMachine(t *testing.T) {
	fx := newAdaptationFixture()
	searcher := &fakeSwapSearcher{}
	provider := &fakeSwapLLM{}
	estimator := &fakeEstimator{waits: map[string]int{fx.benchMach.Id.String(): 2}}
	svc := newAdaptationService(fx, estimator, searcher, provider)

	res, err := svc.CheckAvailability(context.Background(), fx.userId, fx.benchPress.Id)
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}

	if res.Status != AvailabilityStatusAvailable {
		t.Errorf("Status = %q", res.Status)
	}
	if res.WaitTime != 2 {
		t.Errorf("WaitTime = %d", res.WaitTime)
	}
	if len(res.Alternatives) != 0 {
		t.Errorf("Alternatives = %d, want 0", len(res.Alternatives))
	}
	if res.DatasetSource != iot.DatasetSourceLive {
		t.Errorf("DatasetSource = %q", res.DatasetSource)
	}
	if searcher.called || provider.called {
		t.Error("semantic search or model called for a free machine")
	}
}

func TestCheckAvailabilityBodyweightAlwaysAvailable(t *testing.T) {
	fx := newAdaptationFixture()
	pushUp := &entity.Exercise{Id: uuid.New(), Name: "Push Up", MuscleGroup: "chest"}
	fx.repo.exercises = append(fx.repo.exercises, pushUp)
	svc := newAdaptationService(fx, &fakeEstimator{}, &fakeSwapSearcher{}, &fakeSwapLLM{})

	res, err := svc.CheckAvailability(context.Background(), fx.userId, pushUp.Id)
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}

	if res.Status != AvailabilityStatusAvailable || res.WaitTime != 0 {
		t.Errorf("got status=%q wait=%d", res.Status, res.WaitTime)
	}
	if res.DatasetSource != iot.DatasetSourceFallback {
		t.Errorf("DatasetSource = %q, want %q", res.DatasetSource, iot.DatasetSourceFallback)
	}
}

func TestCheckAvailabilityAllAlternativesBusy(t *testing.T) {
	fx := newAdaptationFixture()
	searcher := &fakeSwapSearcher{items: []*entity.KnowledgeItem{
		{Metadata: map[string]interface{}{"name": "Barbell Squat"}},
	}}
	provider := &fakeSwapLLM{}
	estimator := &fakeEstimator{waits: map[string]int{
		fx.benchMach.Id.String():   6,
		fx.dbBenchMach.Id.String(): 8,
		fx.squatMach.Id.String():   8,
	}}
	svc := newAdaptationService(fx, estimator, searcher, provider)

	res, err := svc.CheckAvailability(context.Background(), fx.userId, fx.benchPress.Id)
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}

	if res.Status != AvailabilityStatusBusy || res.WaitTime != 6 {
		t.Fatalf("got status=%q wait=%d", res.Status, res.WaitTime)
	}
	if len(res.Alternatives) != 0 {
		t.Errorf("Alternatives = %+v, want empty", res.Alternatives)
	}
	if !strings.Contains(res.Recommendation, "alternatives are busy") {
		t.Errorf("Recommendation = %q, should say alternatives are busy", res.Recommendation)
	}
	if !searcher.called {
		t.Error("candidate discovery skipped")
	}
	if provider.called {
		t.Error("model called with no surviving candidate")
	}
}

func TestCheckAvailabilityAISelectsSurvivor(t *testing.T) {
	fx := newAdaptationFixture()
	searcher := &fakeSwapSearcher{items: []*entity.KnowledgeItem{
		{Metadata: map[string]interface{}{"name": "Barbell Squat"}},
	}}
	provider := &fakeSwapLLM{response: `{"exercise": "Barbell Squat", "reason": "Rack is free and it keeps intensity high."}`}
	estimator := &fakeEstimator{waits: map[string]int{
		fx.benchMach.Id.String():   10,
		fx.dbBenchMach.Id.String(): 9,
		fx.squatMach.Id.String():   0,
	}}
	svc := newAdaptationService(fx, estimator, searcher, provider)

	res, err := svc.CheckAvailability(context.Background(), fx.userId, fx.benchPress.Id)
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}

	if !provider.called {
		t.Fatal("model not asked to pick a survivor")
	}
	if len(res.Alternatives) != 1 {
		t.Fatalf("Alternatives = %d, want exactly 1", len(res.Alternatives))
	}
	alt := res.Alternatives[0]
	if alt.Type != dto.AlternativeTypeAIRecommendation {
		t.Errorf("Type = %q", alt.Type)
	}
	if alt.Exercise != "Barbell Squat" || alt.Id == nil || *alt.Id != fx.squat.Id {
		t.Errorf("alternative = %+v", alt)
	}
	if alt.WaitTime != 0 {
		t.Errorf("WaitTime = %d", alt.WaitTime)
	}
	if alt.Reason != "Rack is free and it keeps intensity high." {
		t.Errorf("Reason = %q", alt.Reason)
	}
	if !strings.Contains(res.Recommendation, "Barbell Squat") {
		t.Errorf("Recommendation = %q", res.Recommendation)
	}
}

func TestCheckAvailabilityUnrecognizedPickFallsBack(t *testing.T) {
	fx := newAdaptationFixture()
	searcher := &fakeSwapSearcher{items: []*entity.KnowledgeItem{
		{Metadata: map[string]interface{}{"name": "Barbell Squat"}},
	}}
	provider := &fakeSwapLLM{response: `{"exercise": "Underwater Basket Press", "reason": "made up"}`}
	estimator := &fakeEstimator{waits: map[string]int{
		fx.benchMach.Id.String():   10,
		fx.dbBenchMach.Id.String(): 0,
		fx.squatMach.Id.String():   0,
	}}
	svc := newAdaptationService(fx, estimator, searcher, provider)

	res, err := svc.CheckAvailability(context.Background(), fx.userId, fx.benchPress.Id)
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}

	if len(res.Alternatives) != 1 {
		t.Fatalf("Alternatives = %d, want 1", len(res.Alternatives))
	}
	alt := res.Alternatives[0]
	// curated link comes before retrieval hits, so the first survivor is the
	// dumbbell variant
	if alt.Exercise != "Dumbbell Bench Press" || alt.Id == nil || *alt.Id != fx.dumbbell.Id {
		t.Errorf("alternative = %+v, want first survivor fallback", alt)
	}
	if alt.Reason != "Closest match by movement pattern" {
		t.Errorf("Reason = %q, want default reason", alt.Reason)
	}
}

func TestCheckAvailabilityPickMatchesExactName(t *testing.T) {
	fx := newAdaptationFixture()
	searcher := &fakeSwapSearcher{items: []*entity.KnowledgeItem{
		{Metadata: map[string]interface{}{"name": "Barbell Squat"}},
	}}
	// the pick must match the candidate name verbatim, a lowercased answer
	// counts as unrecognized
	provider := &fakeSwapLLM{response: `{"exercise": "barbell squat", "reason": "close enough"}`}
	estimator := &fakeEstimator{waits: map[string]int{
		fx.benchMach.Id.String():   10,
		fx.dbBenchMach.Id.String(): 0,
		fx.squatMach.Id.String():   0,
	}}
	svc := newAdaptationService(fx, estimator, searcher, provider)

	res, err := svc.CheckAvailability(context.Background(), fx.userId, fx.benchPress.Id)
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}

	if len(res.Alternatives) != 1 {
		t.Fatalf("Alternatives = %d, want 1", len(res.Alternatives))
	}
	alt := res.Alternatives[0]
	if alt.Exercise != "Dumbbell Bench Press" || alt.Id == nil || *alt.Id != fx.dumbbell.Id {
		t.Errorf("alternative = %+v, want first survivor fallback", alt)
	}
	if alt.Reason != "Closest match by movement pattern" {
		t.Errorf("Reason = %q, want default reason", alt.Reason)
	}
}

func TestCheckAvailabilityDedupPrefersCatalogLink(t *testing.T) {
	fx := newAdaptationFixture()
	// retrieval returns the same exercise the catalog already links
	searcher := &fakeSwapSearcher{items: []*entity.KnowledgeItem{
		{Metadata: map[string]interface{}{"name": "Dumbbell Bench Press"}},
		{Metadata: map[string]interface{}{"name": "Barbell Bench Press"}}, // the original, excluded
	}}
	provider := &fakeSwapLLM{err: errors.New("model offline")}
	estimator := &fakeEstimator{waits: map[string]int{
		fx.benchMach.Id.String():   10,
		fx.dbBenchMach.Id.String(): 0,
		fx.squatMach.Id.String():   0,
	}}
	svc := newAdaptationService(fx, estimator, searcher, provider)

	res, err := svc.CheckAvailability(context.Background(), fx.userId, fx.benchPress.Id)
	if err != nil {
		t.Fatalf("CheckAvailability() error = %v", err)
	}

	if len(res.Alternatives) != 1 {
		t.Fatalf("Alternatives = %d, want 1", len(res.Alternatives))
	}
	if res.Alternatives[0].Exercise != "Dumbbell Bench Press" {
		t.Errorf("alternative = %+v", res.Alternatives[0])
	}
}

func TestCheckAvailabilityIsRepeatable(t *testing.T) {
	fx := newAdaptationFixture()
	newSearcher := func() *fakeSwapSearcher {
		return &fakeSwapSearcher{items: []*entity.KnowledgeItem{
			{Metadata: map[string]interface{}{"name": "Barbell Squat"}},
		}}
	}
	estimator := &fakeEstimator{waits: map[string]int{
		fx.benchMach.Id.String():   10,
		fx.dbBenchMach.Id.String(): 9,
		fx.squatMach.Id.String():   0,
	}}
	provider := &fakeSwapLLM{err: errors.New("model offline")}
	svc := newAdaptationService(fx, estimator, newSearcher(), provider)

	first, err := svc.CheckAvailability(context.Background(), fx.userId, fx.benchPress.Id)
	if err != nil {
		t.Fatal(err)
	}
	second, err := svc.CheckAvailability(context.Background(), fx.userId, fx.benchPress.Id)
	if err != nil {
		t.Fatal(err)
	}

	if first.Status != second.Status || first.WaitTime != second.WaitTime {
		t.Errorf("results differ: %+v vs %+v", first, second)
	}
	if len(first.Alternatives) != len(second.Alternatives) ||
		first.Alternatives[0].Exercise != second.Alternatives[0].Exercise {
		t.Errorf("alternative sets differ: %+v vs %+v", first.Alternatives, second.Alternatives)
	}
}
