package schedule

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/juniper/pkg/database"
	"github.com/Ramsey-B/juniper/pkg/events"
	"github.com/Ramsey-B/juniper/pkg/models"
)

type memTx struct{}

func (memTx) IsOpen() bool { return true }
func (memTx) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, nil
}
func (memTx) GetContext(context.Context, any, string, ...any) error    { return nil }
func (memTx) SelectContext(context.Context, any, string, ...any) error { return nil }
func (memTx) NamedExecContext(context.Context, string, any) (sql.Result, error) {
	return nil, nil
}
func (memTx) QueryxContext(context.Context, string, ...any) (*sqlx.Rows, error) {
	return nil, nil
}
func (memTx) Commit(context.Context) error   { return nil }
func (memTx) Rollback(context.Context) error { return nil }

type memDB struct {
	txOpen bool
}

func (m *memDB) ExecContext(context.Context, string, ...any) (sql.Result, error) {
	return nil, nil
}
func (m *memDB) GetContext(context.Context, any, string, ...any) error    { return nil }
func (m *memDB) SelectContext(context.Context, any, string, ...any) error { return nil }
func (m *memDB) NamedExecContext(context.Context, string, any) (sql.Result, error) {
	return nil, nil
}
func (m *memDB) QueryxContext(context.Context, string, ...any) (*sqlx.Rows, error) {
	return nil, nil
}
func (m *memDB) BeginTxx(context.Context, *sql.TxOptions) (*sqlx.Tx, error) {
	return nil, nil
}
func (m *memDB) Rebind(query string) string        { return query }
func (m *memDB) PingContext(context.Context) error { return nil }
func (m *memDB) Close() error                      { return nil }
func (m *memDB) Unsafe() *sqlx.DB                  { return nil }
func (m *memDB) GetTx(ctx context.Context, _ *sql.TxOptions) (context.Context, database.Tx, error) {
	m.txOpen = true
	return ctx, memTx{}, nil
}

type memComponents struct {
	parents  map[string]*models.Component
	children map[string][]models.Component
}

func (m *memComponents) GetByID(_ context.Context, tenantID string, id string) (*models.Component, error) {
	comp, ok := m.parents[id]
	if !ok || comp.TenantID != tenantID {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("component %s not found", id))
	}
	cp := *comp
	return &cp, nil
}

func (m *memComponents) CountChildren(_ context.Context, _ string, parentID string) (int, error) {
	return len(m.children[parentID]), nil
}

func (m *memComponents) DeleteChildren(_ context.Context, _ string, parentID string) (int, error) {
	n := len(m.children[parentID])
	delete(m.children, parentID)
	return n, nil
}

func (m *memComponents) BulkCreate(_ context.Context, tenantID string, comps []models.Component) error {
	for _, comp := range comps {
		comp.TenantID = tenantID
		if comp.ParentComponentID != nil {
			m.children[*comp.ParentComponentID] = append(m.children[*comp.ParentComponentID], comp)
		}
	}
	return nil
}

type memItineraries struct {
	itin     models.Itinerary
	days     map[string]models.ItineraryDay
	extended bool
	onExtend func()
}

func (m *memItineraries) GetByID(_ context.Context, tenantID string, id string) (*models.Itinerary, error) {
	if m.itin.ID != id || m.itin.TenantID != tenantID {
		return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("itinerary %s not found", id))
	}
	cp := m.itin
	return &cp, nil
}

func (m *memItineraries) GetDay(_ context.Context, dayID string) (*models.ItineraryDay, error) {
	for _, day := range m.days {
		if day.ID == dayID {
			cp := day
			return &cp, nil
		}
	}
	return nil, httperror.NewHTTPError(http.StatusNotFound, fmt.Sprintf("itinerary day %s not found", dayID))
}

func (m *memItineraries) FindOrCreateDays(_ context.Context, itin *models.Itinerary, dates []string) (map[string]models.ItineraryDay, error) {
	out := make(map[string]models.ItineraryDay, len(dates))
	for _, date := range dates {
		day, ok := m.days[date]
		if !ok {
			day = models.ItineraryDay{
				ID:          "day-" + date,
				TenantID:    itin.TenantID,
				ItineraryID: itin.ID,
				Date:        models.Date(date),
			}
			m.days[date] = day
		}
		out[date] = day
	}
	return out, nil
}

func (m *memItineraries) ExtendBounds(_ context.Context, _ string, _ string, startDate, endDate string) (*models.Itinerary, error) {
	if m.onExtend != nil {
		m.onExtend()
	}
	if startDate < string(m.itin.StartDate) {
		m.itin.StartDate = models.Date(startDate)
	}
	if endDate > string(m.itin.EndDate) {
		m.itin.EndDate = models.Date(endDate)
	}
	m.extended = true
	cp := m.itin
	return &cp, nil
}

type memCruiseDetails struct {
	byComponent map[string]*models.CruiseDetails
}

func (m *memCruiseDetails) Get(_ context.Context, _ string, componentID string) (*models.CruiseDetails, error) {
	details, ok := m.byComponent[componentID]
	if !ok {
		return nil, httperror.NewHTTPError(http.StatusNotFound, "cruise details not found")
	}
	return details, nil
}

type memTourDetails struct {
	byComponent map[string]*models.TourDetails
}

func (m *memTourDetails) Get(_ context.Context, _ string, componentID string) (*models.TourDetails, error) {
	details, ok := m.byComponent[componentID]
	if !ok {
		return nil, httperror.NewHTTPError(http.StatusNotFound, "tour details not found")
	}
	return details, nil
}

type memPortInfos struct {
	rows []models.PortInfoDetails
}

func (m *memPortInfos) BulkInsert(_ context.Context, rows []models.PortInfoDetails) error {
	m.rows = append(m.rows, rows...)
	return nil
}

type memTourDays struct {
	rows []models.TourDayDetails
}

func (m *memTourDays) BulkInsert(_ context.Context, rows []models.TourDayDetails) error {
	m.rows = append(m.rows, rows...)
	return nil
}

type memCatalog struct {
	days []models.TourItineraryDay
}

func (m *memCatalog) GetDays(context.Context, string, string) ([]models.TourItineraryDay, error) {
	return m.days, nil
}

type generatorFixture struct {
	gen       *Generator
	db        *memDB
	comps     *memComponents
	itins     *memItineraries
	cruises   *memCruiseDetails
	tours     *memTourDetails
	portInfos *memPortInfos
	tourDays  *memTourDays
	catalog   *memCatalog
}

func newGeneratorFixture() *generatorFixture {
	f := &generatorFixture{
		db: &memDB{},
		comps: &memComponents{
			parents:  map[string]*models.Component{},
			children: map[string][]models.Component{},
		},
		itins: &memItineraries{
			itin: models.Itinerary{
				ID:        "itin-1",
				TenantID:  "t1",
				Name:      "Mediterranean Crossing",
				StartDate: "2025-12-08",
				EndDate:   "2025-12-12",
				Timezone:  strPtr("UTC"),
			},
			days: map[string]models.ItineraryDay{},
		},
		cruises:   &memCruiseDetails{byComponent: map[string]*models.CruiseDetails{}},
		tours:     &memTourDetails{byComponent: map[string]*models.TourDetails{}},
		portInfos: &memPortInfos{},
		tourDays:  &memTourDays{},
		catalog:   &memCatalog{},
	}
	f.gen = &Generator{
		db:        f.db,
		comps:     f.comps,
		itins:     f.itins,
		cruises:   f.cruises,
		tours:     f.tours,
		portInfos: f.portInfos,
		tourDays:  f.tourDays,
		catalog:   f.catalog,
		emitter:   events.NopEmitter{},
		logger:    ectologger.NewEctoLogger(func(_ ectologger.EctoLogMessage) {}),
	}
	return f
}

func (f *generatorFixture) seedCruise() {
	f.comps.parents["cruise-1"] = &models.Component{
		ID:          "cruise-1",
		TenantID:    "t1",
		ItineraryID: "itin-1",
		Type:        models.ComponentTypeCruise,
		Name:        "Med Crossing",
	}
}

func datePtr(d models.Date) *models.Date {
	return &d
}

func romeToLisbon() *models.CruiseDetails {
	return &models.CruiseDetails{
		ComponentID:   "cruise-1",
		DeparturePort: strPtr("Rome"),
		ArrivalPort:   strPtr("Lisbon"),
		DepartureDate: datePtr("2025-12-08"),
		ArrivalDate:   datePtr("2025-12-12"),
		PortCalls: database.JSONB[[]models.PortCall]{Data: []models.PortCall{
			{Day: 3, PortName: "Naples", ArrivalTime: "08:00", DepartureTime: "17:00"},
		}},
	}
}

func TestGenerateCruisePortSchedule(t *testing.T) {
	f := newGeneratorFixture()
	f.seedCruise()
	f.cruises.byComponent["cruise-1"] = romeToLisbon()

	res, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{})
	require.NoError(t, err)

	require.Len(t, res.Created, 5)
	assert.Equal(t, 0, res.Deleted)

	children := f.comps.children["cruise-1"]
	require.Len(t, children, 5)
	for i, child := range children {
		assert.Equal(t, models.ComponentTypePortInfo, child.Type)
		assert.Equal(t, i, child.SequenceOrder)
		assert.Equal(t, "cruise-1", *child.ParentComponentID)
		date := fmt.Sprintf("2025-12-%02d", 8+i)
		assert.Equal(t, "day-"+date, child.DayID)
	}

	rows := f.portInfos.rows
	require.Len(t, rows, 5)
	assert.Equal(t, models.PortEntryTypeDeparture, rows[0].EntryType)
	assert.Equal(t, "Rome", rows[0].PortName)
	assert.Equal(t, models.PortEntryTypeSeaDay, rows[1].EntryType)
	assert.Equal(t, models.PortEntryTypePortCall, rows[2].EntryType)
	assert.Equal(t, "Naples", rows[2].PortName)
	require.NotNil(t, rows[2].ArrivalTime)
	assert.Equal(t, time.Date(2025, 12, 10, 8, 0, 0, 0, time.UTC), *rows[2].ArrivalTime)
	assert.Equal(t, models.PortEntryTypeSeaDay, rows[3].EntryType)
	assert.Equal(t, models.PortEntryTypeArrival, rows[4].EntryType)
	assert.Equal(t, "Lisbon", rows[4].PortName)

	// Every cruise day got an itinerary day, departure through arrival
	// inclusive.
	assert.Len(t, f.itins.days, 5)
}

func TestGenerateCruisePortScheduleIdempotent(t *testing.T) {
	f := newGeneratorFixture()
	f.seedCruise()
	f.cruises.byComponent["cruise-1"] = romeToLisbon()

	first, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{})
	require.NoError(t, err)

	second, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{})
	require.NoError(t, err)

	assert.Equal(t, len(first.Created), second.Deleted)
	assert.Len(t, second.Created, len(first.Created))
	assert.Len(t, f.comps.children["cruise-1"], 5)
}

func TestGenerateCruisePortScheduleSkipDelete(t *testing.T) {
	t.Run("honored when no children exist", func(t *testing.T) {
		f := newGeneratorFixture()
		f.seedCruise()
		f.cruises.byComponent["cruise-1"] = romeToLisbon()

		res, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{SkipDelete: true})
		require.NoError(t, err)
		assert.Equal(t, 0, res.Deleted)
		assert.Len(t, f.comps.children["cruise-1"], 5)
	})

	t.Run("overridden when children exist", func(t *testing.T) {
		f := newGeneratorFixture()
		f.seedCruise()
		f.cruises.byComponent["cruise-1"] = romeToLisbon()
		parentID := "cruise-1"
		f.comps.children["cruise-1"] = []models.Component{
			{ID: "old-1", ParentComponentID: &parentID, Type: models.ComponentTypePortInfo},
			{ID: "old-2", ParentComponentID: &parentID, Type: models.ComponentTypePortInfo},
		}

		res, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{SkipDelete: true})
		require.NoError(t, err)
		assert.Equal(t, 2, res.Deleted)
		assert.Len(t, f.comps.children["cruise-1"], 5)
	})
}

func TestGenerateCruisePortScheduleOwnershipMismatch(t *testing.T) {
	f := newGeneratorFixture()
	f.seedCruise()
	parentID := "cruise-1"
	f.comps.children["cruise-1"] = []models.Component{
		{ID: "old-1", ParentComponentID: &parentID, Type: models.ComponentTypePortInfo},
	}

	_, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{
		ItineraryID:   "someone-elses-itinerary",
		CruiseDetails: romeToLisbon(),
	})
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))

	// Rejection happens before any mutation.
	assert.Len(t, f.comps.children["cruise-1"], 1)
	assert.Empty(t, f.portInfos.rows)
}

func TestGenerateCruisePortScheduleWrongParentType(t *testing.T) {
	f := newGeneratorFixture()
	f.comps.parents["tour-1"] = &models.Component{
		ID:          "tour-1",
		TenantID:    "t1",
		ItineraryID: "itin-1",
		Type:        models.ComponentTypeTour,
	}

	_, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "tour-1", models.GenerateOptions{})
	require.Error(t, err)
	assert.Equal(t, http.StatusNotFound, httperror.GetStatusCode(err))
}

func TestGenerateCruisePortScheduleBounds(t *testing.T) {
	t.Run("out of bounds without auto extend", func(t *testing.T) {
		f := newGeneratorFixture()
		f.seedCruise()
		details := romeToLisbon()
		details.ArrivalDate = datePtr("2025-12-14")
		f.cruises.byComponent["cruise-1"] = details

		_, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{})
		require.Error(t, err)
		assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
		assert.False(t, f.itins.extended)
		assert.Empty(t, f.comps.children["cruise-1"])
	})

	t.Run("auto extend widens the itinerary inside the transaction", func(t *testing.T) {
		f := newGeneratorFixture()
		f.seedCruise()
		details := romeToLisbon()
		details.ArrivalDate = datePtr("2025-12-14")
		f.cruises.byComponent["cruise-1"] = details

		extendedInTx := false
		f.itins.onExtend = func() { extendedInTx = f.db.txOpen }

		res, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{AutoExtendItinerary: true})
		require.NoError(t, err)
		assert.True(t, f.itins.extended)
		assert.True(t, extendedInTx)
		assert.Equal(t, models.Date("2025-12-14"), f.itins.itin.EndDate)
		assert.Len(t, res.Created, 7)
	})
}

func TestGenerateCruisePortScheduleScannedItineraryDates(t *testing.T) {
	f := newGeneratorFixture()
	f.seedCruise()
	f.cruises.byComponent["cruise-1"] = romeToLisbon()

	// Bounds as the Postgres driver delivers them, via Date.Scan on
	// time.Time values.
	var start, end models.Date
	require.NoError(t, start.Scan(time.Date(2025, 12, 8, 0, 0, 0, 0, time.UTC)))
	require.NoError(t, end.Scan(time.Date(2025, 12, 12, 0, 0, 0, 0, time.UTC)))
	f.itins.itin.StartDate = start
	f.itins.itin.EndDate = end

	res, err := f.gen.GenerateCruisePortSchedule(context.Background(), "t1", "cruise-1", models.GenerateOptions{})
	require.NoError(t, err)
	assert.False(t, f.itins.extended)
	assert.Len(t, res.Created, 5)
}

func TestGenerateTourDayScheduleFromSnapshot(t *testing.T) {
	f := newGeneratorFixture()
	f.comps.parents["tour-1"] = &models.Component{
		ID:          "tour-1",
		TenantID:    "t1",
		ItineraryID: "itin-1",
		Type:        models.ComponentTypeTour,
		Name:        "Douro Explorer",
	}

	res, err := f.gen.GenerateTourDaySchedule(context.Background(), "t1", "tour-1", models.GenerateOptions{
		ItineraryID: "itin-1",
		TourDetails: &models.TourDetails{
			ComponentID: "tour-1",
			StartDate:   datePtr("2025-12-08"),
			ItineraryJSON: database.JSONB[[]models.TourItineraryDay]{Data: []models.TourItineraryDay{
				{Title: "Arrive in Porto", OvernightCity: "Porto"},
				{DayNumber: 2, Title: "Douro Valley"},
				{},
			}},
		},
	})
	require.NoError(t, err)
	require.Len(t, res.Created, 3)

	children := f.comps.children["tour-1"]
	require.Len(t, children, 3)
	assert.Equal(t, "Arrive in Porto", children[0].Name)
	assert.Equal(t, "Douro Valley", children[1].Name)
	assert.Equal(t, "Day 3", children[2].Name)
	for i, child := range children {
		assert.Equal(t, models.ComponentTypeTourDay, child.Type)
		assert.True(t, child.Locked)
		date := fmt.Sprintf("2025-12-%02d", 8+i)
		assert.Equal(t, "day-"+date, child.DayID)
	}

	rows := f.tourDays.rows
	require.Len(t, rows, 3)
	assert.Equal(t, 1, rows[0].DayNumber)
	require.NotNil(t, rows[0].OvernightCity)
	assert.Equal(t, "Porto", *rows[0].OvernightCity)
	assert.Equal(t, 2, rows[1].DayNumber)
	assert.Equal(t, 3, rows[2].DayNumber)
}

func TestGenerateTourDayScheduleStartFromItineraryDay(t *testing.T) {
	f := newGeneratorFixture()
	f.comps.parents["tour-1"] = &models.Component{
		ID:          "tour-1",
		TenantID:    "t1",
		ItineraryID: "itin-1",
		DayID:       "day-2025-12-09",
		Type:        models.ComponentTypeTour,
	}
	f.itins.days["2025-12-09"] = models.ItineraryDay{
		ID:          "day-2025-12-09",
		TenantID:    "t1",
		ItineraryID: "itin-1",
		Date:        "2025-12-09",
	}
	f.tours.byComponent["tour-1"] = &models.TourDetails{
		ComponentID: "tour-1",
		Days:        2,
	}

	res, err := f.gen.GenerateTourDaySchedule(context.Background(), "t1", "tour-1", models.GenerateOptions{})
	require.NoError(t, err)
	require.Len(t, res.Created, 2)

	children := f.comps.children["tour-1"]
	require.Len(t, children, 2)
	assert.Equal(t, "day-2025-12-09", children[0].DayID)
	assert.Equal(t, "day-2025-12-10", children[1].DayID)
	assert.Equal(t, "Day 1", children[0].Name)
	assert.Equal(t, "Day 2", children[1].Name)
}

func TestGenerateTourDayScheduleFromCatalog(t *testing.T) {
	f := newGeneratorFixture()
	f.comps.parents["tour-1"] = &models.Component{
		ID:          "tour-1",
		TenantID:    "t1",
		ItineraryID: "itin-1",
		Type:        models.ComponentTypeTour,
	}
	f.tours.byComponent["tour-1"] = &models.TourDetails{
		ComponentID:  "tour-1",
		LinkedTourID: strPtr("catalog-tour-9"),
		StartDate:    datePtr("2025-12-10"),
	}
	f.catalog.days = []models.TourItineraryDay{
		{DayNumber: 1, Title: "Lisbon Old Town", OvernightCity: "Lisbon"},
		{DayNumber: 2, Title: "Sintra"},
	}

	res, err := f.gen.GenerateTourDaySchedule(context.Background(), "t1", "tour-1", models.GenerateOptions{})
	require.NoError(t, err)
	require.Len(t, res.Created, 2)

	children := f.comps.children["tour-1"]
	require.Len(t, children, 2)
	assert.Equal(t, "Lisbon Old Town", children[0].Name)
	assert.Equal(t, "Sintra", children[1].Name)
}
