package generator

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/google/uuid"

	"community-pulse/internal/cleaner"
)

// Defect rates for the generated dataset, matching the messiness seen
// in real member exports.
const (
	duplicateRate    = 0.10
	invalidEmailRate = 0.05
	missingValueRate = 0.05
	unknownDateRate  = 0.05
	upperNameRate    = 0.10
	lowerNameRate    = 0.10
	usDateRate       = 0.10
	euroDateRate     = 0.10
)

var firstNames = []string{
	"James", "Mary", "John", "Patricia", "Robert", "Jennifer", "Michael",
	"Linda", "William", "Elizabeth", "David", "Barbara", "Richard",
	"Susan", "Joseph", "Jessica", "Thomas", "Sarah", "Charles", "Karen",
	"Anna", "Daniel", "Laura", "Carlos", "Sofia", "Omar", "Priya",
}

var lastNames = []string{
	"Smith", "Johnson", "Williams", "Brown", "Jones", "Garcia", "Miller",
	"Davis", "Rodriguez", "Martinez", "Hernandez", "Lopez", "Gonzalez",
	"Wilson", "Anderson", "Thomas", "Taylor", "Moore", "Jackson", "Lee",
	"Khan", "Nguyen", "Kim", "Patel", "Okafor",
}

var emailDomains = []string{"example.com", "test.org", "mail.net", "club.io"}

// Fields lists the columns of a generated dataset.
var Fields = []string{"ID", "Name", "Email", "Join_Date", "Last_Login", "Event_Attendance", "Role"}

// Generator produces member datasets with intentional defects for
// cleaning demonstrations: duplicated rows, mangled name casing,
// corrupted emails, mixed date encodings and missing values.
type Generator struct {
	rng *rand.Rand
	now time.Time
}

// New creates a generator. A non-zero seed makes the output
// deterministic.
func New(seed int64) *Generator {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Generator{
		rng: rand.New(rand.NewSource(seed)),
		now: time.Now(),
	}
}

// Generate returns n base members plus a duplicated sample, shuffled.
func (g *Generator) Generate(n int) *cleaner.RecordSet {
	rows := make([]cleaner.Record, 0, n+n/10)
	for i := 0; i < n; i++ {
		rows = append(rows, g.member())
	}

	// Duplicate a sample of rows wholesale.
	for i := 0; i < int(float64(n)*duplicateRate); i++ {
		src := rows[g.rng.Intn(len(rows))]
		dup := make(cleaner.Record, len(src))
		for k, v := range src {
			dup[k] = v
		}
		rows = append(rows, dup)
	}

	g.rng.Shuffle(len(rows), func(i, j int) {
		rows[i], rows[j] = rows[j], rows[i]
	})

	return cleaner.NewRecordSet(Fields, rows)
}

func (g *Generator) member() cleaner.Record {
	first := firstNames[g.rng.Intn(len(firstNames))]
	last := lastNames[g.rng.Intn(len(lastNames))]
	name := first + " " + last
	email := fmt.Sprintf("%s.%s%d@%s",
		strings.ToLower(first), strings.ToLower(last),
		g.rng.Intn(1000), emailDomains[g.rng.Intn(len(emailDomains))])

	joined := g.now.AddDate(0, 0, -g.rng.Intn(730))
	lastLogin := g.now.Add(-time.Duration(g.rng.Intn(365*24)) * time.Hour)

	rec := cleaner.Record{
		"ID":               uuid.NewString(),
		"Name":             g.messName(name),
		"Email":            g.messEmail(email),
		"Join_Date":        g.messDate(joined),
		"Last_Login":       lastLogin.Format("2006-01-02 15:04:05"),
		"Event_Attendance": g.rng.Intn(20),
		"Role":             g.role(),
	}

	if g.rng.Float64() < missingValueRate {
		rec["Event_Attendance"] = nil
	}
	if g.rng.Float64() < missingValueRate {
		rec["Last_Login"] = nil
	}
	return rec
}

func (g *Generator) role() string {
	switch r := g.rng.Float64(); {
	case r < 0.80:
		return "Member"
	case r < 0.85:
		return "Admin"
	default:
		return "Guest"
	}
}

func (g *Generator) messName(name string) string {
	switch r := g.rng.Float64(); {
	case r < upperNameRate:
		return strings.ToUpper(name)
	case r < upperNameRate+lowerNameRate:
		return strings.ToLower(name)
	default:
		return name
	}
}

func (g *Generator) messEmail(email string) string {
	if g.rng.Float64() < invalidEmailRate {
		return strings.Replace(email, "@", " at ", 1)
	}
	return email
}

func (g *Generator) messDate(d time.Time) string {
	switch r := g.rng.Float64(); {
	case r < usDateRate:
		return d.Format("01/02/2006")
	case r < usDateRate+euroDateRate:
		return d.Format("02-01-2006")
	case r < usDateRate+euroDateRate+unknownDateRate:
		return "Unknown"
	default:
		return d.Format("2006-01-02")
	}
}
