package ingest

import "net/http"

func Register(mux *http.ServeMux, runner Runner, fetcher Fetcher, defaultLimit int) {
	mux.Handle("POST /ingest", CycleHandler{runner})
	mux.Handle("POST /ingest/refresh", RefreshHandler{runner})
	mux.Handle("POST /items/fetch", FetchHandler{Fetcher: fetcher, DefaultLimit: defaultLimit})
}
