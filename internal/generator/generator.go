// Package generator produces self-consistent service records from a catalog.
package generator

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/ukydev/service-docs/internal/catalog"
	"github.com/ukydev/service-docs/internal/models"
)

const (
	// partsProbability is the chance a record lists replaced parts.
	partsProbability = 0.7
	// maxParts caps the number of parts sampled from one issue.
	maxParts = 3

	minDurationMinutes = 30
	maxDurationMinutes = 240

	// serviceWindowDays bounds how far back a service date may fall.
	serviceWindowDays = 2 * 365
)

// Generator builds service records. The selection logic and the faker draw
// from one random source, so a seed fixes the whole sequence of records.
type Generator struct {
	catalog *models.Catalog
	rng     *rand.Rand
	faker   *gofakeit.Faker
	now     func() time.Time
}

type options struct {
	seed   uint64
	seeded bool
	now    func() time.Time
}

// Option configures a Generator.
type Option func(*options)

// WithSeed makes every record produced by the generator reproducible.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithClock sets the clock used for the service date window.
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.now = now
	}
}

// New creates a generator for the given catalog. It fails when the catalog
// cannot yield a valid record.
func New(cat *models.Catalog, opts ...Option) (*Generator, error) {
	if err := catalog.Validate(cat); err != nil {
		return nil, err
	}

	o := options{now: time.Now}
	for _, opt := range opts {
		opt(&o)
	}
	if !o.seeded {
		o.seed = rand.Uint64()
	}

	src := rand.NewPCG(o.seed, o.seed)
	return &Generator{
		catalog: cat,
		rng:     rand.New(src),
		faker:   gofakeit.NewFaker(src, false),
		now:     o.now,
	}, nil
}

// Generate returns a new service record. The category, model and issue are
// chosen uniformly and any listed parts come from the chosen issue only.
func (g *Generator) Generate() models.ServiceRecord {
	category := g.catalog.Categories[g.rng.IntN(len(g.catalog.Categories))]
	model := pick(g.rng, category.Models)
	issue := category.Issues[g.rng.IntN(len(category.Issues))]

	var parts *string
	if g.rng.Float64() < partsProbability {
		parts = models.JoinParts(g.sampleParts(issue.Parts))
	}

	return g.fill(category.Name, model, issue, parts)
}

// GenerateForPart returns a record pinned to one catalog part. The problem and
// solution come from the issue that lists the part.
func (g *Generator) GenerateForPart(match catalog.PartMatch) (models.ServiceRecord, error) {
	if len(match.Category.Models) == 0 {
		return models.ServiceRecord{}, fmt.Errorf("%w: category %q has no models", catalog.ErrInvalidCatalog, match.Category.Name)
	}
	found := false
	for _, p := range match.Issue.Parts {
		if p == match.Part {
			found = true
			break
		}
	}
	if !found {
		return models.ServiceRecord{}, fmt.Errorf("%w: %q is not listed by its issue", catalog.ErrPartNotFound, match.Part)
	}

	model := pick(g.rng, match.Category.Models)
	return g.fill(match.Category.Name, model, match.Issue, models.JoinParts([]string{match.Part})), nil
}

// sampleParts draws between 1 and min(3, len(parts)) distinct parts.
func (g *Generator) sampleParts(parts []string) []string {
	limit := min(maxParts, len(parts))
	k := 1 + g.rng.IntN(limit)
	sample := make([]string, 0, k)
	for _, i := range g.rng.Perm(len(parts))[:k] {
		sample = append(sample, parts[i])
	}
	return sample
}

func (g *Generator) fill(machineType, model string, issue models.Issue, parts *string) models.ServiceRecord {
	serviceDate := g.serviceDate()
	technician := g.catalog.Technicians[g.rng.IntN(len(g.catalog.Technicians))]
	company := pick(g.rng, g.catalog.Companies)

	duration := minDurationMinutes + g.rng.IntN(maxDurationMinutes-minDurationMinutes+1)

	return models.ServiceRecord{
		MachineType:        machineType,
		MachineModel:       model,
		ProblemDescription: issue.Problem,
		SolutionApplied:    issue.Solution,
		PartsUsed:          parts,
		ClientName:         g.faker.Company(),
		ClientAddress:      g.address(),
		ClientPhone:        g.faker.PhoneFormatted(),
		ServiceDate:        serviceDate,
		SerialNumber:       fmt.Sprintf("SN%d", g.faker.Number(10000000, 99999999)),
		WorkOrder:          fmt.Sprintf("WO-%d", g.faker.Number(100000, 999999)),
		Technician:         technician,
		Company:            company,
		ArrivalTime:        fmt.Sprintf("%02d:%02d", g.faker.Hour(), g.faker.Minute()),
		DurationMinutes:    duration,
		LaborHours:         models.LaborHoursFor(duration),
	}
}

// serviceDate picks a calendar day within the last two years, today included.
func (g *Generator) serviceDate() time.Time {
	now := g.now()
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return today.AddDate(0, 0, -g.rng.IntN(serviceWindowDays+1))
}

func (g *Generator) address() string {
	return fmt.Sprintf("%s\n%s, %s %s", g.faker.Street(), g.faker.City(), g.faker.StateAbr(), g.faker.Zip())
}

func pick(rng *rand.Rand, values []string) string {
	return values[rng.IntN(len(values))]
}
