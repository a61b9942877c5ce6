package availability

import (
	"reflect"
	"testing"
	"time"
)

var testNow = time.Date(2025, 3, 14, 9, 30, 0, 0, time.UTC)

func TestParse_NegativeMarkerMeansUnavailable(t *testing.T) {
	p := NewParser(nil)

	bodies := []string{
		"<html><body>Derzeit keine Termine frei.</body></html>",
		"<html><body>No appointments are currently available</body></html>",
		"<html><body>Leider AUSGEBUCHT!</body></html>",
	}
	for _, body := range bodies {
		res := p.Parse(body, testNow)
		if res.Available {
			t.Fatalf("body %q: want unavailable", body)
		}
		if len(res.Details) != 0 {
			t.Fatalf("body %q: want no details, got %v", body, res.Details)
		}
	}
}

func TestParse_NoMarkerMeansAvailable(t *testing.T) {
	p := NewParser(nil)
	res := p.Parse("<html><body><h1>Dienstleistung</h1></body></html>", testNow)
	if !res.Available {
		t.Fatalf("want available, got %+v", res)
	}
}

func TestParse_EmptyBodyIsUnavailable(t *testing.T) {
	p := NewParser(nil)
	for _, body := range []string{"", "   \n\t"} {
		if res := p.Parse(body, testNow); res.Available {
			t.Fatalf("empty body should read as unavailable")
		}
	}
}

func TestParse_Deterministic(t *testing.T) {
	p := NewParser(nil)
	body := `<html><body><button>Termin buchen</button><a href="/x">09:00</a></body></html>`
	a := p.Parse(body, testNow)
	b := p.Parse(body, testNow)
	if !reflect.DeepEqual(a, b) {
		t.Fatalf("same body gave different results:\n%+v\n%+v", a, b)
	}
}

func TestParse_CustomMarkersReplaceDefaults(t *testing.T) {
	p := NewParser([]string{"closed for maintenance"})

	if res := p.Parse("<html><body>closed for maintenance</body></html>", testNow); res.Available {
		t.Fatalf("custom marker should read as unavailable")
	}
	// Default markers no longer apply once overridden.
	if res := p.Parse("<html><body>keine Termine</body></html>", testNow); !res.Available {
		t.Fatalf("default marker should be ignored after override")
	}
}

func TestParse_ExtractsSlotDetails(t *testing.T) {
	body := `<html><body>
		<p>Freie Termine in dieser Woche</p>
		<button class="btn">Termin buchen</button>
		<a href="/slot/1">09:00</a>
		<a href="/slot/2">14:30</a>
		<select name="termin_date"><option>Mo</option></select>
	</body></html>`

	res := NewParser(nil).Parse(body, testNow)
	if !res.Available {
		t.Fatalf("want available, got %+v", res)
	}

	want := []string{
		"availability note: Freie Termine in dieser Woche",
		"booking action: Termin buchen",
		"time slot: 09:00",
		"time slot: 14:30",
		"date selector: termin_date",
	}
	if !reflect.DeepEqual(res.Details, want) {
		t.Fatalf("details mismatch:\n got %v\nwant %v", res.Details, want)
	}
}

func TestParse_IgnoresDisabledControls(t *testing.T) {
	body := `<html><body>
		<button disabled>Termin buchen</button>
		<a class="slot disabled" href="/slot/1">09:00</a>
	</body></html>`

	res := NewParser(nil).Parse(body, testNow)
	if !res.Available {
		t.Fatalf("want available (no negative marker), got %+v", res)
	}
	if len(res.Details) != 0 {
		t.Fatalf("disabled controls must not produce details, got %v", res.Details)
	}
}

func TestParse_StampsProvidedTime(t *testing.T) {
	res := NewParser(nil).Parse("<html></html>", testNow)
	if !res.CheckedAt.Equal(testNow) {
		t.Fatalf("want CheckedAt %v, got %v", testNow, res.CheckedAt)
	}
}
