package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"fit-buddy-be/internal/dto"
	"fit-buddy-be/internal/entity"
	"fit-buddy-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type fakeSessionRepo struct {
	histories map[uuid.UUID]*entity.SessionHistory
	sets      []*entity.SetHistory
	bestSet   *contract.BestSet
	stats     []*contract.ExerciseStat
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{histories: map[uuid.UUID]*entity.SessionHistory{}}
}

func (f *fakeSessionRepo) CreateHistory(ctx context.Context, userId uuid.UUID, sessionId *uuid.UUID) (*entity.SessionHistory, error) {
	h := &entity.SessionHistory{
		Id:        uuid.New(),
		UserId:    userId,
		SessionId: sessionId,
		StartedAt: time.Now(),
	}
	f.histories[h.Id] = h
	return h, nil
}

func (f *fakeSessionRepo) GetHistory(ctx context.Context, historyId uuid.UUID) (*entity.SessionHistory, error) {
	return f.histories[historyId], nil
}

func (f *fakeSessionRepo) GetFullSession(ctx context.Context, historyId uuid.UUID) (*entity.SessionHistory, error) {
	h := f.histories[historyId]
	if h == nil {
		return nil, nil
	}
	for _, s := range f.sets {
		if s.SessionHistoryId == h.Id {
			h.Sets = append(h.Sets, s)
		}
	}
	return h, nil
}

func (f *fakeSessionRepo) AddSet(ctx context.Context, set *entity.SetHistory) error {
	f.sets = append(f.sets, set)
	return nil
}

func (f *fakeSessionRepo) FinishSession(ctx context.Context, historyId uuid.UUID, notes *string, totalXp int, finishedAt time.Time) (*entity.SessionHistory, error) {
	h := f.histories[historyId]
	if h == nil {
		return nil, errors.New("history not found")
	}
	h.FinishedAt = &finishedAt
	h.FeedbackNotes = notes
	h.TotalXp = totalXp
	return h, nil
}

func (f *fakeSessionRepo) GetRecentBestSet(ctx context.Context, userId, exerciseId uuid.UUID) (*contract.BestSet, error) {
	return f.bestSet, nil
}

func (f *fakeSessionRepo) GetExerciseHistory(ctx context.Context, userId, exerciseId uuid.UUID, limit int) ([]*contract.ExerciseStat, error) {
	return f.stats, nil
}

type fakeSensorFeed struct {
	snapshot   map[string]interface{}
	gotMachine string
	gotStart   time.Time
	gotEnd     time.Time
	calls      int
}

func (f *fakeSensorFeed) Snapshot(ctx context.Context, machineID string, start, end time.Time) map[string]interface{} {
	f.calls++
	f.gotMachine = machineID
	f.gotStart = start
	f.gotEnd = end
	if f.snapshot == nil {
		return map[string]interface{}{}
	}
	return f.snapshot
}

type sessionUnitOfWork struct {
	fakeUnitOfWork
	sessions *fakeSessionRepo
}

func (u *sessionUnitOfWork) SessionRepository() contract.SessionRepository { return u.sessions }

func newSessionFixture() (*fakeSessionRepo, *fakeDictionaryRepo, *fakeSensorFeed, ISessionService) {
	sessions := newFakeSessionRepo()
	dictionary := &fakeDictionaryRepo{}
	feed := &fakeSensorFeed{}
	uow := &sessionUnitOfWork{
		fakeUnitOfWork: fakeUnitOfWork{dictionary: dictionary},
		sessions:       sessions,
	}
	svc := NewSessionService(&fakeFactory{uow: uow}, feed)
	return sessions, dictionary, feed, svc
}

func TestStartCreatesHistory(t *testing.T) {
	sessions, _, _, svc := newSessionFixture()
	userId := uuid.New()

	res, err := svc.Start(context.Background(), userId, &dto.StartSessionRequest{})
	if err != nil {
		t.Fatalf("Start() error = %v", err)
	}

	h := sessions.histories[res.HistoryId]
	if h == nil {
		t.Fatal("history not persisted")
	}
	if h.UserId != userId {
		t.Errorf("UserId = %v", h.UserId)
	}
	if h.SessionId != nil {
		t.Errorf("SessionId = %v, want nil for a freestyle session", h.SessionId)
	}
}

func TestLogSetAttachesSnapshot(t *testing.T) {
	sessions, dictionary, feed, svc := newSessionFixture()
	feed.snapshot = map[string]interface{}{"heart_rate": 140}
	userId := uuid.New()

	exercise := &entity.Exercise{Id: uuid.New(), Name: "Leg Press", MuscleGroup: "legs", MachineTypeId: machineType("LEG_PRESS")}
	dictionary.exercises = append(dictionary.exercises, exercise)

	started, err := svc.Start(context.Background(), userId, &dto.StartSessionRequest{})
	if err != nil {
		t.Fatal(err)
	}

	rpe := 8
	scanned := "machine-7"
	res, err := svc.LogSet(context.Background(), userId, &dto.LogSetRequest{
		HistoryId:       started.HistoryId,
		ExerciseId:      exercise.Id,
		WeightKg:        120,
		Reps:            10,
		Rpe:             &rpe,
		MachineId:       &scanned,
		DurationSeconds: 45,
	})
	if err != nil {
		t.Fatalf("LogSet() error = %v", err)
	}

	if res.SensorSnapshot["heart_rate"] != 140 {
		t.Errorf("SensorSnapshot = %v", res.SensorSnapshot)
	}
	if feed.gotMachine != "machine-7" {
		t.Errorf("sensor queried for machine %q, want the scanned one", feed.gotMachine)
	}
	if got := feed.gotEnd.Sub(feed.gotStart); got != 45*time.Second {
		t.Errorf("sensor window = %v, want the 45s set duration", got)
	}
	if len(sessions.sets) != 1 {
		t.Fatalf("sets persisted = %d", len(sessions.sets))
	}
	set := sessions.sets[0]
	if set.WeightKg != 120 || set.RepsCount != 10 {
		t.Errorf("set = %+v", set)
	}
	if set.MachineId == nil || *set.MachineId != "machine-7" {
		t.Errorf("MachineId = %v, want the scanned machine", set.MachineId)
	}
	if !set.StartTime.Before(set.EndTime) {
		t.Error("StartTime not derived from set duration")
	}
}

func TestLogSetWithoutMachineSkipsSensor(t *testing.T) {
	sessions, dictionary, feed, svc := newSessionFixture()
	feed.snapshot = map[string]interface{}{"heart_rate": 140}
	userId := uuid.New()

	exercise := &entity.Exercise{Id: uuid.New(), Name: "Push Up", MuscleGroup: "chest"}
	dictionary.exercises = append(dictionary.exercises, exercise)

	started, err := svc.Start(context.Background(), userId, &dto.StartSessionRequest{})
	if err != nil {
		t.Fatal(err)
	}

	res, err := svc.LogSet(context.Background(), userId, &dto.LogSetRequest{
		HistoryId:  started.HistoryId,
		ExerciseId: exercise.Id,
		Reps:       15,
	})
	if err != nil {
		t.Fatalf("LogSet() error = %v", err)
	}

	if feed.calls != 0 {
		t.Errorf("sensor queried %d times without a machine id, want 0", feed.calls)
	}
	if len(res.SensorSnapshot) != 0 {
		t.Errorf("SensorSnapshot = %v, want empty", res.SensorSnapshot)
	}
	if sessions.sets[0].MachineId != nil {
		t.Errorf("MachineId = %v, want nil", sessions.sets[0].MachineId)
	}
}

func TestLogSetRejectsForeignHistory(t *testing.T) {
	_, dictionary, _, svc := newSessionFixture()
	exercise := &entity.Exercise{Id: uuid.New(), Name: "Leg Press", MuscleGroup: "legs"}
	dictionary.exercises = append(dictionary.exercises, exercise)

	owner := uuid.New()
	started, err := svc.Start(context.Background(), owner, &dto.StartSessionRequest{})
	if err != nil {
		t.Fatal(err)
	}

	_, err = svc.LogSet(context.Background(), uuid.New(), &dto.LogSetRequest{
		HistoryId:  started.HistoryId,
		ExerciseId: exercise.Id,
	})

	var ferr *fiber.Error
	if !errors.As(err, &ferr) || ferr.Code != fiber.StatusNotFound {
		t.Fatalf("err = %v, want fiber 404 for another user's history", err)
	}
}

func TestStopAwardsXp(t *testing.T) {
	sessions, _, _, svc := newSessionFixture()
	userId := uuid.New()

	started, err := svc.Start(context.Background(), userId, &dto.StartSessionRequest{})
	if err != nil {
		t.Fatal(err)
	}
	// backdate the start so the duration is a known 30 minutes
	sessions.histories[started.HistoryId].StartedAt = time.Now().Add(-30*time.Minute - 5*time.Second)

	res, err := svc.Stop(context.Background(), userId, &dto.StopSessionRequest{
		HistoryId: started.HistoryId,
		Notes:     "felt strong",
	})
	if err != nil {
		t.Fatalf("Stop() error = %v", err)
	}

	if res.DurationMinutes != 30 {
		t.Errorf("DurationMinutes = %d, want 30", res.DurationMinutes)
	}
	if want := 30*10 + 50; res.TotalXp != want {
		t.Errorf("TotalXp = %d, want %d", res.TotalXp, want)
	}
	h := sessions.histories[started.HistoryId]
	if h.FinishedAt == nil {
		t.Error("history not marked finished")
	}
	if h.FeedbackNotes == nil || *h.FeedbackNotes != "felt strong" {
		t.Errorf("FeedbackNotes = %v", h.FeedbackNotes)
	}
}

func TestStopTwiceConflicts(t *testing.T) {
	_, _, _, svc := newSessionFixture()
	userId := uuid.New()

	started, err := svc.Start(context.Background(), userId, &dto.StartSessionRequest{})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Stop(context.Background(), userId, &dto.StopSessionRequest{HistoryId: started.HistoryId}); err != nil {
		t.Fatal(err)
	}

	_, err = svc.Stop(context.Background(), userId, &dto.StopSessionRequest{HistoryId: started.HistoryId})

	var ferr *fiber.Error
	if !errors.As(err, &ferr) || ferr.Code != fiber.StatusConflict {
		t.Fatalf("err = %v, want fiber 409 on double stop", err)
	}
}

func TestStatsWithoutSets(t *testing.T) {
	_, _, _, svc := newSessionFixture()

	res, err := svc.Stats(context.Background(), uuid.New(), uuid.New())
	if err != nil {
		t.Fatalf("Stats() error = %v", err)
	}

	if res.BestSet != nil {
		t.Errorf("BestSet = %+v, want nil", res.BestSet)
	}
	if len(res.History) != 0 {
		t.Errorf("History = %d points, want 0", len(res.History))
	}
}
