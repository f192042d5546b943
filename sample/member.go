// Package sample generates demo workbooks shaped like the sheets the report
// builder is meant for: a parliament roster with country, chamber, party and
// committee columns.
package sample

import (
	"fmt"
	"math/rand/v2"

	"github.com/bxcodec/faker/v4"
)

// Member is one row of the demo roster.
type Member struct {
	Country   string
	Chamber   string
	Party     string
	Committee string
	Name      string
	District  string
	Since     int
}

var countries = []string{"France", "Germany", "Turkmenistan", "United States", "Japan"}

var chambers = []string{"Upper House", "Lower House"}

var parties = []string{"Green", "Liberal", "Conservative", "Social Democrat", "Independent"}

// Committee is left blank for some members so that the report shows rows
// without a description.
var committees = []string{"Budget", "Defence", "Education", "Foreign Affairs", ""}

// GenerateMembers creates n members with random data.
func GenerateMembers(n int) []Member {
	members := make([]Member, n)

	for i := range n {
		members[i] = Member{
			Country:   pick(countries),
			Chamber:   pick(chambers),
			Party:     pick(parties),
			Committee: pick(committees),
			Name:      faker.Name(),
			District:  fmt.Sprintf("D-%02d", rand.IntN(40)+1),
			Since:     1990 + rand.IntN(35),
		}
	}

	return members
}

func pick(values []string) string {
	return values[rand.IntN(len(values))]
}
