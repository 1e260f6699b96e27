package service

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/bimsrama/Relasi4warna-main/internal/archetype"
	"github.com/bimsrama/Relasi4warna-main/internal/model"
	"github.com/bimsrama/Relasi4warna-main/internal/repository"
	"github.com/bimsrama/Relasi4warna-main/internal/scoring"
	"github.com/bimsrama/Relasi4warna-main/internal/util"
	"github.com/bimsrama/Relasi4warna-main/pkg/logger"
	"github.com/bimsrama/Relasi4warna-main/pkg/monitoring"
	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const questionCacheTTL = 10 * time.Minute

// SeriesInfo is one entry of the static series catalog.
type SeriesInfo struct {
	ID            string `json:"id"`
	NameID        string `json:"name_id"`
	NameEN        string `json:"name_en"`
	DescriptionID string `json:"description_id"`
	DescriptionEN string `json:"description_en"`
}

var seriesCatalog = []SeriesInfo{
	{
		ID:            "family",
		NameID:        "Keluarga",
		NameEN:        "Family",
		DescriptionID: "Kenali gaya komunikasimu dalam keluarga.",
		DescriptionEN: "Understand your communication style within the family.",
	},
	{
		ID:            "business",
		NameID:        "Bisnis",
		NameEN:        "Business",
		DescriptionID: "Temukan caramu bekerja dan memimpin.",
		DescriptionEN: "Discover how you work and lead.",
	},
	{
		ID:            "friendship",
		NameID:        "Persahabatan",
		NameEN:        "Friendship",
		DescriptionID: "Pahami peranmu dalam lingkaran pertemanan.",
		DescriptionEN: "Understand your role in your circle of friends.",
	},
	{
		ID:            "couples",
		NameID:        "Pasangan",
		NameEN:        "Couples",
		DescriptionID: "Selami caramu mencintai dan dicintai.",
		DescriptionEN: "Explore how you love and want to be loved.",
	},
}

// QuestionOptionView hides the untranslated half of each option.
type QuestionOptionView struct {
	Archetype string `json:"archetype"`
	Text      string `json:"text"`
}

type QuestionView struct {
	ID           string               `json:"id"`
	Series       string               `json:"series"`
	Order        int                  `json:"order"`
	Text         string               `json:"text"`
	Options      []QuestionOptionView `json:"options"`
	StressMarker bool                 `json:"-"`
}

type QuizService struct {
	QuizRepo     *repository.QuizRepository
	QuestionRepo *repository.QuestionRepository
	Redis        *redis.Client
}

func NewQuizService(quizRepo *repository.QuizRepository, questionRepo *repository.QuestionRepository, rdb *redis.Client) *QuizService {
	return &QuizService{
		QuizRepo:     quizRepo,
		QuestionRepo: questionRepo,
		Redis:        rdb,
	}
}

func (s *QuizService) Series() []SeriesInfo {
	return seriesCatalog
}

func validSeries(series string) bool {
	for _, info := range seriesCatalog {
		if info.ID == series {
			return true
		}
	}
	return false
}

// Questions returns the active bank for a series projected into one language,
// cached in Redis since the bank changes only through the admin endpoints.
func (s *QuizService) Questions(ctx context.Context, series string, lang archetype.Language) ([]QuestionView, error) {
	if !validSeries(series) {
		return nil, util.ErrSeriesNotFound
	}

	cacheKey := fmt.Sprintf("questions:%s:%s", series, lang)
	if s.Redis != nil {
		if cached, err := s.Redis.Get(ctx, cacheKey).Result(); err == nil {
			var views []QuestionView
			if json.Unmarshal([]byte(cached), &views) == nil {
				return views, nil
			}
		}
	}

	questions, err := s.QuestionRepo.FindBySeries(series)
	if err != nil {
		return nil, err
	}

	views := make([]QuestionView, 0, len(questions))
	for _, q := range questions {
		view := QuestionView{
			ID:     q.ID,
			Series: q.Series,
			Order:  q.SortOrder,
			Text:   q.TextID,
		}
		if lang == archetype.LangEN {
			view.Text = q.TextEN
		}
		for _, opt := range q.Options {
			text := opt.TextID
			if lang == archetype.LangEN {
				text = opt.TextEN
			}
			view.Options = append(view.Options, QuestionOptionView{
				Archetype: opt.Archetype,
				Text:      text,
			})
		}
		views = append(views, view)
	}

	if s.Redis != nil {
		if encoded, err := json.Marshal(views); err == nil {
			s.Redis.Set(ctx, cacheKey, encoded, questionCacheTTL)
		}
	}
	return views, nil
}

// InvalidateQuestionCache drops the cached projections for a series after an
// admin edit.
func (s *QuizService) InvalidateQuestionCache(ctx context.Context, series string) {
	if s.Redis == nil {
		return
	}
	for _, lang := range archetype.Languages() {
		s.Redis.Del(ctx, fmt.Sprintf("questions:%s:%s", series, lang))
	}
}

func (s *QuizService) StartAttempt(userID uint, series, language string) (*model.QuizAttempt, error) {
	if !validSeries(series) {
		return nil, util.ErrSeriesNotFound
	}
	attempt := &model.QuizAttempt{
		UserID:   userID,
		Series:   series,
		Language: string(archetype.ParseLanguage(language)),
		Status:   model.AttemptInProgress,
	}
	if err := s.QuizRepo.CreateAttempt(attempt); err != nil {
		return nil, err
	}
	return attempt, nil
}

// SubmitAttempt scores the answers and persists the result. The status guard
// in CompleteAttempt makes a duplicate submit fail instead of re-scoring.
func (s *QuizService) SubmitAttempt(userID uint, attemptID string, answers []scoring.Answer) (*model.QuizResult, error) {
	attempt, err := s.QuizRepo.FindAttemptByID(attemptID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrAttemptNotFound
		}
		return nil, err
	}
	if attempt.UserID != userID {
		return nil, util.ErrPermissionDenied
	}

	stored := make([]model.AttemptAnswer, len(answers))
	for i, a := range answers {
		stored[i] = model.AttemptAnswer{QuestionID: a.QuestionID, SelectedOption: a.SelectedOption}
	}
	rows, err := s.QuizRepo.CompleteAttempt(attemptID, stored)
	if err != nil {
		return nil, err
	}
	if rows == 0 {
		return nil, util.ErrAttemptCompleted
	}

	stressLookup := s.stressMarkerLookup(attempt.Series)
	scored := scoring.Score(answers, stressLookup)

	scores := make(map[string]int, len(scored.Scores))
	for arch, count := range scored.Scores {
		scores[string(arch)] = count
	}

	result := &model.QuizResult{
		UserID:             userID,
		AttemptID:          attemptID,
		Series:             attempt.Series,
		Language:           attempt.Language,
		Scores:             scores,
		PrimaryArchetype:   string(scored.Primary),
		SecondaryArchetype: string(scored.Secondary),
		BalanceIndex:       scored.BalanceIndex,
		StressFlag:         scored.StressFlag,
		StressMarkers:      scored.StressMarkers,
	}
	if err := s.QuizRepo.CreateResult(result); err != nil {
		return nil, err
	}

	monitoring.QuizzesScored.WithLabelValues(attempt.Series, result.PrimaryArchetype).Inc()
	if result.StressFlag {
		monitoring.StressFlagsRaised.Inc()
	}

	return result, nil
}

// stressMarkerLookup builds the question-id predicate the scoring engine
// consumes. A bank read failure degrades to no markers rather than blocking
// the submit.
func (s *QuizService) stressMarkerLookup(series string) scoring.StressMarkerLookup {
	questions, err := s.QuestionRepo.FindBySeries(series)
	if err != nil {
		logger.Log.Error("failed to load question bank for stress markers",
			zap.String("series", series), zap.Error(err))
		return nil
	}
	flagged := make(map[string]bool, len(questions))
	for _, q := range questions {
		if q.StressMarker {
			flagged[q.ID] = true
		}
	}
	return func(questionID string) bool {
		return flagged[questionID]
	}
}

func (s *QuizService) GetResult(userID uint, resultID string, isAdmin bool) (*model.QuizResult, error) {
	result, err := s.QuizRepo.FindResultByID(resultID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, util.ErrResultNotFound
		}
		return nil, err
	}
	if result.UserID != userID && !isAdmin {
		return nil, util.ErrPermissionDenied
	}
	return result, nil
}

func (s *QuizService) History(userID uint) ([]model.QuizResult, error) {
	return s.QuizRepo.FindResultsByUser(userID)
}
