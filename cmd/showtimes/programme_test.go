package main_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

// programmeHTML mirrors the structure of the cinema's programme page:
// a grid region with runtimes and a per-date region with showtimes.
const programmeHTML = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Programm &amp; Tickets</title></head>
<body>
<section class="programme-table-main-grid">
	<div class="programme-table-main-grid-movieitem">
		<h2>Film A</h2>
		<span>FSK: 12</span>
		<span>Dauer: 120</span>
	</div>
	<div class="programme-table-main-grid-movieitem">
		<h2>Film B</h2>
		<span>Dauer: 95</span>
	</div>
</section>
<section class="programme-table-main">
	<div class="programme-table-main-movie-item movie-item" data-date="2024-05-02">
		<div class="movie-item-caption"><span>Film B</span></div>
		<label class="movie-item-showtime">
			<a class="movie-item-showing movie-item-showing-lang-OmU"><span class="movie-itemshowtime-linktext">21:00</span></a>
		</label>
	</div>
	<div class="programme-table-main-movie-item movie-item" data-date="2024-05-01">
		<div class="movie-item-caption"><span>Film A</span></div>
		<label class="movie-item-showtime">
			<a class="movie-item-showing movie-item-showing-lang-OV"><span class="movie-itemshowtime-linktext">18:00</span></a>
		</label>
	</div>
	<div class="programme-table-main-movie-item movie-item" data-date="2024-05-01">
		<div class="movie-item-caption"><span>Premiere</span></div>
		<label class="movie-item-showtime">
			<a class="movie-item-showing"><span class="movie-itemshowtime-linktext">16:30</span></a>
		</label>
	</div>
	<div class="programme-table-main-movie-item movie-item" data-date="bald">
		<div class="movie-item-caption"><span>Film A</span></div>
		<label class="movie-item-showtime">
			<a class="movie-item-showing"><span class="movie-itemshowtime-linktext">12:00</span></a>
		</label>
	</div>
</section>
</body>
</html>`

// expectedText is the text report for programmeHTML.
const expectedText = "Wednesday, 01 May 2024\n" +
	"Premiere\n" +
	"    Start: 16:30   End:   --\n" +
	"    Duration:   --\n\n" +
	"Film A\n" +
	"    Start: 18:00   End: 20:15\n" +
	"    Duration: 120 min + 15 min ads [OV]\n\n" +
	"Thursday, 02 May 2024\n" +
	"Film B\n" +
	"    Start: 21:00   End: 22:50\n" +
	"    Duration: 95 min + 15 min ads [OmU]\n\n"

func newProgrammeServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		_, _ = w.Write([]byte(programmeHTML))
	}))
	t.Cleanup(srv.Close)
	return srv
}
