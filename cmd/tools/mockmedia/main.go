package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// mockmedia is a local stand-in for the hosted media endpoint: accepts
// unsigned multipart uploads and answers with a secure_url pointing back at
// itself, so the editor's upload path can be exercised without credentials.
func main() {
	addr := flag.String("addr", ":9090", "Listen address")
	dir := flag.String("dir", "./storage/mockmedia", "Upload directory")
	flag.Parse()

	if err := os.MkdirAll(*dir, 0o755); err != nil {
		log.Fatalf("Failed to create upload dir: %v", err)
	}

	mux := http.NewServeMux()

	mux.HandleFunc("/upload", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file field required", http.StatusBadRequest)
			return
		}
		defer file.Close()

		ext := strings.ToLower(filepath.Ext(header.Filename))
		if ext == "" {
			ext = ".bin"
		}
		name := uuid.NewString() + ext

		dst, err := os.Create(filepath.Join(*dir, name))
		if err != nil {
			http.Error(w, "write failed", http.StatusInternalServerError)
			return
		}
		defer dst.Close()
		if _, err := io.Copy(dst, file); err != nil {
			http.Error(w, "write failed", http.StatusInternalServerError)
			return
		}

		secureURL := fmt.Sprintf("http://%s/media/%s", r.Host, name)
		log.Printf("stored %s -> %s", header.Filename, secureURL)

		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"secure_url": secureURL})
	})

	mux.Handle("/media/", http.StripPrefix("/media/", http.FileServer(http.Dir(*dir))))

	log.Printf("mockmedia listening on %s, storing in %s", *addr, *dir)
	log.Printf("point CLOUDINARY_UPLOAD_URL at http://localhost%s/upload", *addr)
	if err := http.ListenAndServe(*addr, mux); err != nil {
		log.Fatal(err)
	}
}
