package mockapi

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"movie-catalog/core/storage"
	"movie-catalog/feature/movies/models"

	"github.com/minio/minio-go/v7"
)

// Document reads and writes the raw db.json bytes. A missing document loads as nil.
type Document interface {
	Load(ctx context.Context) ([]byte, error)
	Save(ctx context.Context, data []byte) error
}

// FileDocument keeps db.json on the local filesystem.
type FileDocument struct {
	Path string
}

// Load reads the file; a missing file is an empty document.
func (d FileDocument) Load(ctx context.Context) ([]byte, error) {
	data, err := os.ReadFile(d.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", d.Path, err)
	}
	return data, nil
}

// Save writes to a temporary file and renames it over the document.
func (d FileDocument) Save(ctx context.Context, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(d.Path), ".db-*.json")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return fmt.Errorf("failed to write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("failed to close temp file: %w", err)
	}
	if err := os.Rename(tmp.Name(), d.Path); err != nil {
		return fmt.Errorf("failed to replace %s: %w", d.Path, err)
	}
	return nil
}

// ObjectDocument keeps db.json as an object in the storage bucket.
type ObjectDocument struct {
	client storage.Client
	bucket string
	key    string
}

// NewObjectDocument creates a document stored at bucket/key.
func NewObjectDocument(client storage.Client, bucket, key string) *ObjectDocument {
	return &ObjectDocument{client: client, bucket: bucket, key: key}
}

// Load downloads the object; a missing object is an empty document.
func (d *ObjectDocument) Load(ctx context.Context) ([]byte, error) {
	obj, err := d.client.GetObject(ctx, d.bucket, d.key, minio.GetObjectOptions{})
	if errors.Is(err, storage.ErrObjectNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get %s/%s: %w", d.bucket, d.key, err)
	}
	defer obj.Close()

	data, err := io.ReadAll(obj)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s/%s: %w", d.bucket, d.key, err)
	}
	return data, nil
}

// Save uploads the whole document.
func (d *ObjectDocument) Save(ctx context.Context, data []byte) error {
	_, err := d.client.PutObject(ctx, d.bucket, d.key, bytes.NewReader(data), int64(len(data)), minio.PutObjectOptions{
		ContentType: "application/json",
	})
	if err != nil {
		return fmt.Errorf("failed to put %s/%s: %w", d.bucket, d.key, err)
	}
	return nil
}

// DocumentStore keeps the collection inside a json-server style document
// ({"<collection>": [...]}) and rewrites the whole document on every change.
// Other top-level keys of the document are preserved.
type DocumentStore struct {
	doc        Document
	collection string
	mu         sync.Mutex
}

// NewDocumentStore creates a store over doc.
func NewDocumentStore(doc Document, collection string) *DocumentStore {
	return &DocumentStore{doc: doc, collection: collection}
}

func (s *DocumentStore) List(ctx context.Context) ([]models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, movies, err := s.read(ctx)
	return movies, err
}

func (s *DocumentStore) Get(ctx context.Context, id int64) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, movies, err := s.read(ctx)
	if err != nil {
		return models.Movie{}, err
	}
	if i := indexOf(movies, id); i >= 0 {
		return movies[i], nil
	}
	return models.Movie{}, ErrNotFound
}

func (s *DocumentStore) Create(ctx context.Context, movie models.Movie) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	root, movies, err := s.read(ctx)
	if err != nil {
		return models.Movie{}, err
	}

	if movie.ID == 0 {
		movie.ID = nextID(movies)
	} else if indexOf(movies, movie.ID) >= 0 {
		return models.Movie{}, ErrConflict
	}

	movie = movie.Normalize()
	if err := s.write(ctx, root, append(movies, movie)); err != nil {
		return models.Movie{}, err
	}
	return movie, nil
}

func (s *DocumentStore) Update(ctx context.Context, movie models.Movie) (models.Movie, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	root, movies, err := s.read(ctx)
	if err != nil {
		return models.Movie{}, err
	}

	i := indexOf(movies, movie.ID)
	if i < 0 {
		return models.Movie{}, ErrNotFound
	}

	movies[i] = movie.Normalize()
	if err := s.write(ctx, root, movies); err != nil {
		return models.Movie{}, err
	}
	return movies[i], nil
}

func (s *DocumentStore) Delete(ctx context.Context, id int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	root, movies, err := s.read(ctx)
	if err != nil {
		return err
	}

	i := indexOf(movies, id)
	if i < 0 {
		return ErrNotFound
	}
	return s.write(ctx, root, slices.Delete(movies, i, i+1))
}

func (s *DocumentStore) read(ctx context.Context) (map[string]json.RawMessage, []models.Movie, error) {
	data, err := s.doc.Load(ctx)
	if err != nil {
		return nil, nil, err
	}

	root := map[string]json.RawMessage{}
	if len(bytes.TrimSpace(data)) > 0 {
		if err := json.Unmarshal(data, &root); err != nil {
			return nil, nil, fmt.Errorf("failed to parse document: %w", err)
		}
	}

	movies := []models.Movie{}
	if raw, ok := root[s.collection]; ok {
		if err := json.Unmarshal(raw, &movies); err != nil {
			return nil, nil, fmt.Errorf("failed to parse collection %s: %w", s.collection, err)
		}
	}
	if movies == nil {
		movies = []models.Movie{}
	}
	for i := range movies {
		movies[i] = movies[i].Normalize()
	}
	return root, movies, nil
}

func (s *DocumentStore) write(ctx context.Context, root map[string]json.RawMessage, movies []models.Movie) error {
	raw, err := json.Marshal(movies)
	if err != nil {
		return fmt.Errorf("failed to encode collection: %w", err)
	}
	root[s.collection] = raw

	data, err := json.MarshalIndent(root, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode document: %w", err)
	}
	return s.doc.Save(ctx, data)
}

func indexOf(movies []models.Movie, id int64) int {
	return slices.IndexFunc(movies, func(m models.Movie) bool {
		return m.ID == id
	})
}
