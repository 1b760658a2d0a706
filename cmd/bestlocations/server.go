package main

import (
	"net/http"
	"time"

	"bestlocations/internal/app/places"
	"bestlocations/internal/store"
	"bestlocations/internal/web"
)

func newHTTPHandler(placeStore store.PlaceStore) (http.Handler, error) {
	placesSvc := places.New(placeStore)

	srv, err := web.New(placesSvc)
	if err != nil {
		return nil, err
	}
	return srv.Routes(), nil
}

func newHTTPServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}
}
