// Package factories fabricates demo data for seeding the ledger.
package factories

import (
	"github.com/aklbites/jamwhopper/internal/models"
	"github.com/jaswdr/faker"
)

var fake = faker.New()

type OrderFactory struct{}

// DemoCustomerName returns a plausible customer name.
func (of *OrderFactory) DemoCustomerName() string {
	return fake.Person().Name()
}

// DemoLocation picks one of the candidate routes.
func (of *OrderFactory) DemoLocation(routes []models.Route) string {
	if len(routes) == 0 {
		return ""
	}
	return routes[fake.IntBetween(0, len(routes)-1)].Name
}
