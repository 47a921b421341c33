package pages

import (
	"time"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/dmitrymomot/orderdesk/pkg/apiclient"
)

var printer = message.NewPrinter(language.BrazilianPortuguese)

// money formats v as Brazilian reais, e.g. "R$ 1.234,50".
func money(v float64) string {
	return printer.Sprintf("R$ %.2f", v)
}

// date renders an API date (RFC 3339 or YYYY-MM-DD) as DD/MM/YYYY and
// passes anything else through.
func date(s string) string {
	for _, layout := range []string{time.RFC3339, time.DateOnly} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02/01/2006")
		}
	}
	return s
}

// sortClients orders clients by name using Portuguese collation, so
// accented names sort next to their unaccented neighbours.
func sortClients(clients []apiclient.ClientRecord) {
	c := collate.New(language.BrazilianPortuguese, collate.IgnoreCase)
	names := make([]string, len(clients))
	for i := range clients {
		names[i] = clients[i].Name
	}
	c.Sort(clientsByName{clients: clients, names: names})
}

type clientsByName struct {
	clients []apiclient.ClientRecord
	names   []string
}

func (s clientsByName) Len() int { return len(s.clients) }

func (s clientsByName) Swap(i, j int) {
	s.clients[i], s.clients[j] = s.clients[j], s.clients[i]
	s.names[i], s.names[j] = s.names[j], s.names[i]
}

func (s clientsByName) Bytes(i int) []byte { return []byte(s.names[i]) }
