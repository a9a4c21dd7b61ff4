package service

import (
	"context"
	"fmt"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/deppfellow/travelog/internal/model"
	"github.com/deppfellow/travelog/internal/repository"
	"github.com/deppfellow/travelog/internal/server"
)

// SeedUserCount is how many fake users the demo data set holds.
const SeedUserCount = 10

// Seed rows reference their parents by 1-based position in the plan.
type (
	SeedUser struct {
		Email       string `json:"email"`
		Username    string `json:"username"`
		TravelStyle string `json:"travel_style"`
	}

	SeedCity struct {
		CityName string `json:"city_name"`
		Country  string `json:"country"`
		UserRef  int    `json:"user_ref"`
	}

	SeedCityNote struct {
		NoteBody string `json:"note_body"`
		NoteType string `json:"note_type,omitempty"`
		CityRef  int    `json:"city_ref"`
	}

	SeedLocation struct {
		LocationName string  `json:"location_name"`
		DateVisited  string  `json:"date_visited"`
		Rating       int     `json:"rating"`
		Category     string  `json:"category"`
		AvgCost      int     `json:"avg_cost"`
		GoogleMapURL *string `json:"google_map_url"`
		Website      *string `json:"website"`
		CityRef      int     `json:"city_ref"`
		UserRef      int     `json:"user_ref"`
	}

	SeedLocationNote struct {
		NoteBody    string `json:"note_body"`
		LocationRef int    `json:"location_ref"`
	}
)

// SeedPlan is the demo data set, built before anything is written.
type SeedPlan struct {
	Users         []SeedUser         `json:"users"`
	Cities        []SeedCity         `json:"cities"`
	CityNotes     []SeedCityNote     `json:"city_notes"`
	Locations     []SeedLocation     `json:"locations"`
	LocationNotes []SeedLocationNote `json:"location_notes"`
}

// SeedService rebuilds the demo journal through the regular create
// operations, so seeded rows pass the same validation as API writes.
type SeedService struct {
	server        *server.Server
	repos         *repository.Repositories
	users         *UserService
	cities        *CityService
	cityNotes     *CityNoteService
	locations     *LocationService
	locationNotes *LocationNoteService
}

func NewSeedService(s *server.Server, repos *repository.Repositories, services *Services) *SeedService {
	return &SeedService{
		server:        s,
		repos:         repos,
		users:         services.Users,
		cities:        services.Cities,
		cityNotes:     services.CityNotes,
		locations:     services.Locations,
		locationNotes: services.LocationNotes,
	}
}

func strPtr(s string) *string {
	return &s
}

// NewSeedPlan builds the demo data set with fake users drawn from faker.
func NewSeedPlan(faker *gofakeit.Faker) SeedPlan {
	plan := SeedPlan{}

	seen := map[string]bool{}
	for len(plan.Users) < SeedUserCount {
		email := faker.Email()
		username := model.UsernameFromEmail(email)
		if seen[email] || seen[username] {
			continue
		}
		seen[email], seen[username] = true, true

		plan.Users = append(plan.Users, SeedUser{
			Email:       email,
			Username:    username,
			TravelStyle: faker.RandomString(model.TravelStyles),
		})
	}

	plan.Cities = []SeedCity{
		{CityName: "Killarney", Country: "Ireland", UserRef: 1},
		{CityName: "Seoul", Country: "South Korea", UserRef: 1},
		{CityName: "Seoul", Country: "South Korea", UserRef: 2},
	}

	plan.CityNotes = []SeedCityNote{
		{NoteBody: "great hub for tours to ring of kerry and dingle peninsula", CityRef: 1},
		{NoteBody: "so fast paced", CityRef: 2},
		{NoteBody: "subway - well connected, but ends at midnight.", NoteType: model.NoteTypeTransportation, CityRef: 2},
		{NoteBody: "buses - some run late night, some end early.", NoteType: model.NoteTypeTransportation, CityRef: 2},
	}

	visited := func() string {
		d := faker.DateRange(
			time.Date(2015, 1, 1, 0, 0, 0, 0, time.UTC),
			time.Date(2019, 12, 31, 0, 0, 0, 0, time.UTC),
		)
		return *model.FormatDateVisited(&d)
	}

	plan.Locations = []SeedLocation{
		{
			LocationName: "Haneul Park (하늘공원)",
			DateVisited:  visited(),
			Rating:       4,
			Category:     "OutdoorActivity",
			AvgCost:      0,
			GoogleMapURL: strPtr("https://goo.gl/maps/E6CtsTEMe27p5HXj9"),
			Website:      strPtr("https://parks.seoul.go.kr/parks/detailView.do?pIdx=6"),
			CityRef:      2,
			UserRef:      1,
		},
		{
			LocationName: "Seoul Forest Park (서울숲공원)",
			DateVisited:  visited(),
			Rating:       4,
			Category:     "OutdoorActivity",
			AvgCost:      0,
			GoogleMapURL: strPtr("https://goo.gl/maps/kDGN5J1qCkgRsMoX8"),
			Website:      strPtr("https://parks.seoul.go.kr/parks/detailView.do?pIdx=6"),
			CityRef:      2,
			UserRef:      1,
		},
		{
			LocationName: "Gimbap Cheonguk (김밥천국 서강대점)",
			DateVisited:  visited(),
			Rating:       4,
			Category:     "FoodDrink",
			AvgCost:      1,
			GoogleMapURL: strPtr("https://goo.gl/maps/NAsvAz4WeD8Hrh3J7"),
			CityRef:      2,
			UserRef:      1,
		},
	}

	plan.LocationNotes = []SeedLocationNote{
		{NoteBody: "great for fall foliage. walk all the way to the tip for nice city views and deer", LocationRef: 2},
		{NoteBody: "great city views, especially at night", LocationRef: 1},
		{NoteBody: "can take long stairs up/down or paid trolley.", LocationRef: 1},
		{NoteBody: "Must see Silver grass in the fall", LocationRef: 1},
		{NoteBody: "Food is very affordable, 3,000-6,000 won", LocationRef: 3},
		{NoteBody: "Loved the Cheese Ramen (with egg) and the kimbap rolled in egg", LocationRef: 3},
		{NoteBody: "Not so good: bibimbap", LocationRef: 3},
	}

	return plan
}

func ref(ids []int, n int, kind string) (int, error) {
	if n < 1 || n > len(ids) {
		return 0, fmt.Errorf("seed %s reference %d out of range", kind, n)
	}
	return ids[n-1], nil
}

// Apply wipes every table and inserts plan.
func (s *SeedService) Apply(ctx context.Context, plan SeedPlan) error {
	logger := s.server.Logger

	if err := s.repos.Journal.Truncate(ctx); err != nil {
		return err
	}
	logger.Info().Msg("journal tables truncated")

	userIDs := make([]int, 0, len(plan.Users))
	for _, u := range plan.Users {
		view, err := s.users.Create(ctx, u.Email, u.Username, strPtr(u.TravelStyle))
		if err != nil {
			return fmt.Errorf("seeding user %s: %w", u.Email, err)
		}
		userIDs = append(userIDs, view.ID)
	}

	cityIDs := make([]int, 0, len(plan.Cities))
	for _, c := range plan.Cities {
		userID, err := ref(userIDs, c.UserRef, "user")
		if err != nil {
			return err
		}
		view, err := s.cities.Create(ctx, CreateCityInput{CityName: c.CityName, Country: c.Country, UserID: userID})
		if err != nil {
			return fmt.Errorf("seeding city %s: %w", c.CityName, err)
		}
		cityIDs = append(cityIDs, view.ID)
	}

	for _, n := range plan.CityNotes {
		cityID, err := ref(cityIDs, n.CityRef, "city")
		if err != nil {
			return err
		}
		if _, err := s.cityNotes.Create(ctx, CreateCityNoteInput{NoteBody: n.NoteBody, NoteType: n.NoteType, CityID: cityID}); err != nil {
			return fmt.Errorf("seeding city note: %w", err)
		}
	}

	locationIDs := make([]int, 0, len(plan.Locations))
	for _, l := range plan.Locations {
		cityID, err := ref(cityIDs, l.CityRef, "city")
		if err != nil {
			return err
		}
		userID, err := ref(userIDs, l.UserRef, "user")
		if err != nil {
			return err
		}

		view, err := s.locations.Create(ctx, CreateLocationInput{
			LocationName: l.LocationName,
			DateVisited:  l.DateVisited,
			Rating:       l.Rating,
			Category:     l.Category,
			AvgCost:      l.AvgCost,
			GoogleMapURL: l.GoogleMapURL,
			Website:      l.Website,
			CityID:       cityID,
			UserID:       userID,
		})
		if err != nil {
			return fmt.Errorf("seeding location %s: %w", l.LocationName, err)
		}
		locationIDs = append(locationIDs, view.ID)
	}

	for _, n := range plan.LocationNotes {
		locationID, err := ref(locationIDs, n.LocationRef, "location")
		if err != nil {
			return err
		}
		if _, err := s.locationNotes.Create(ctx, n.NoteBody, locationID); err != nil {
			return fmt.Errorf("seeding location note: %w", err)
		}
	}

	logger.Info().
		Int("users", len(userIDs)).
		Int("cities", len(cityIDs)).
		Int("city_notes", len(plan.CityNotes)).
		Int("locations", len(locationIDs)).
		Int("location_notes", len(plan.LocationNotes)).
		Msg("seed finished")

	return nil
}
