package main

import (
	"flag"
	"log"
	"mime"
	"net/http"
	"path/filepath"
	"strings"
)

// httpParams stores the http connection parameters
type httpParams struct {
	address string
	prefix  string
	root    string
}

func main() {
	httpConn := &httpParams{}
	flag.StringVar(&httpConn.address, "addr", "localhost:5000", "address to listen on")
	flag.StringVar(&httpConn.prefix, "prefix", "/", "url prefix of the served files")
	flag.StringVar(&httpConn.root, "root", ".", "directory holding index.html and the wasm binary")
	flag.Parse()

	initServer(httpConn)
}

// initServer initializes the webserver
func initServer(p *httpParams) {
	handler, err := newHandler(p)
	if err != nil {
		log.Fatalln(err)
	}
	log.Printf("serving %s as %s on %s", p.root, p.prefix, p.address)

	httpServer := http.Server{
		Addr:    p.address,
		Handler: handler,
	}
	err = httpServer.ListenAndServe()
	if err != nil {
		log.Fatalln(err)
	}
}

// newHandler returns a logging file server for the demo directory.
func newHandler(p *httpParams) (http.Handler, error) {
	root, err := filepath.Abs(p.root)
	if err != nil {
		return nil, err
	}
	p.root = root

	// Browsers refuse to stream-compile wasm served with another type.
	if err := mime.AddExtensionType(".wasm", "application/wasm"); err != nil {
		return nil, err
	}

	mux := http.NewServeMux()
	mux.Handle(p.prefix, http.StripPrefix(strings.TrimSuffix(p.prefix, "/"), http.FileServer(http.Dir(root))))

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Print(r.RemoteAddr + " " + r.Method + " " + r.URL.String())
		mux.ServeHTTP(w, r)
	}), nil
}
