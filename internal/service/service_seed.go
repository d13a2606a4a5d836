package service

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/MKhiriev/go-meet/internal/logger"
	"github.com/MKhiriev/go-meet/internal/store"
	"github.com/MKhiriev/go-meet/internal/utils"
	"github.com/MKhiriev/go-meet/models"
)

// seedTelegramIDBase offsets demo accounts away from real small ids.
const seedTelegramIDBase = 1_000_000_000

var (
	seedNames = []string{
		"Анна", "Мария", "Елена", "Дарья", "Анастасия",
		"Алёна", "Виктория", "Ксения", "Полина", "София",
	}
	seedCities = []string{
		"Москва", "Санкт-Петербург", "Новосибирск", "Екатеринбург",
		"Казань", "Нижний Новгород", "Красноярск", "Челябинск",
	}
	seedAbout = []string{
		"Люблю йогу и здоровое питание",
		"Ищу компанию для походов в кино",
		"Увлекаюсь фотографией и путешествиями",
		"Ищу единомышленниц для настольных игр",
		"Люблю выставки и современное искусство",
		"Ищу подруг для совместных тренировок",
		"Увлекаюсь кулинарией и виноделием",
		"Ищу компанию для волонтёрства",
	}
)

type seedService struct {
	users     store.UserRepository
	profiles  store.ProfileRepository
	interests store.InterestRepository

	ids utils.IDGenerator
	rnd *rand.Rand
	now func() time.Time

	logger *logger.Logger
}

// NewSeedService returns a SeedService. Seeding is idempotent per demo
// index: demo users are keyed by a fixed Telegram id.
func NewSeedService(storages *store.Storages, ids utils.IDGenerator, rnd *rand.Rand, now func() time.Time, logger *logger.Logger) SeedService {
	if rnd == nil {
		rnd = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if now == nil {
		now = time.Now
	}
	return &seedService{
		users:     storages.UserRepository,
		profiles:  storages.ProfileRepository,
		interests: storages.InterestRepository,
		ids:       ids,
		rnd:       rnd,
		now:       now,
		logger:    logger,
	}
}

// Seed ensures the default interest catalogue and creates or refreshes
// count VERIFIED demo users with profiles. A failing user is logged and
// counted; it does not stop the run.
func (s *seedService) Seed(ctx context.Context, count int) (models.SeedReport, error) {
	log := logger.FromContext(ctx)

	catalogue, err := s.interests.EnsureInterests(ctx, models.DefaultInterests)
	if err != nil {
		return models.SeedReport{}, fmt.Errorf("seeding interests failed: %w", err)
	}
	report := models.SeedReport{Interests: len(catalogue)}

	for i := range count {
		if err = ctx.Err(); err != nil {
			return report, err
		}

		if err = s.seedUser(ctx, i, catalogue); err != nil {
			log.Err(err).Int("index", i).Msg("demo user was not seeded")
			report.Failed++
			continue
		}
		report.Users++
	}

	return report, nil
}

func (s *seedService) seedUser(ctx context.Context, i int, catalogue []models.Interest) error {
	name := seedNames[s.rnd.IntN(len(seedNames))]
	username := fmt.Sprintf("%s_%d", strings.ToLower(name), 1000+i)

	user, err := s.users.UpsertUser(ctx, models.User{
		ID:         s.ids.Generate(),
		TelegramID: models.TelegramID(seedTelegramIDBase + i),
		Username:   &username,
	})
	if err != nil {
		return fmt.Errorf("upserting user: %w", err)
	}

	if user.Status != models.UserStatusVerified {
		if _, err = s.users.SetUserStatus(ctx, user.ID, models.UserStatusVerified); err != nil {
			return fmt.Errorf("verifying user: %w", err)
		}
	}

	age := 20 + s.rnd.IntN(20)
	profile := models.Profile{
		UserID:    user.ID,
		Name:      name,
		BirthDate: models.NewDate(s.now().AddDate(-age, 0, 0)),
		City:      seedCities[s.rnd.IntN(len(seedCities))],
		About:     seedAbout[s.rnd.IntN(len(seedAbout))],
		PhotoURL:  fmt.Sprintf("https://i.pravatar.cc/150?img=%d", i+1),
	}

	if _, err = s.profiles.UpsertProfile(ctx, profile, s.pickInterests(catalogue, 2+s.rnd.IntN(3))); err != nil {
		return fmt.Errorf("upserting profile: %w", err)
	}

	return nil
}

func (s *seedService) pickInterests(catalogue []models.Interest, n int) []int64 {
	n = min(n, len(catalogue))
	ids := make([]int64, 0, n)
	for _, idx := range s.rnd.Perm(len(catalogue))[:n] {
		ids = append(ids, catalogue[idx].ID)
	}
	return ids
}
