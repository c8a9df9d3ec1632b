// Package gitstore keeps trust documentation versions in a local git
// repository. Every version is one commit on main tagged v<N>; the active
// branch points at the commit of the active version.
package gitstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"sync"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
	"github.com/go-git/go-git/v5/plumbing/object"

	"adops/internal/core/domain"
)

const (
	contentFile  = "content.json"
	versionFile  = "version.json"
	mainBranch   = "main"
	activeBranch = "active"
	tagPrefix    = "v"
)

// versionMeta is committed next to the content so a version can be read
// back from its commit alone.
type versionMeta struct {
	Number    int    `json:"number"`
	Name      string `json:"name"`
	Changelog string `json:"changelog"`
	Author    string `json:"author"`
}

// TrustStore implements port.TrustStore on top of go-git. All operations
// are serialised.
type TrustStore struct {
	mu   sync.Mutex
	repo *git.Repository
	now  func() time.Time
}

// Open opens the repository in dir, initialising it when dir holds none.
func Open(dir string) (*TrustStore, error) {
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		repo, err = initRepo(dir)
	}
	if err != nil {
		return nil, fmt.Errorf("open trust repo: %w", err)
	}
	return &TrustStore{repo: repo, now: time.Now}, nil
}

func initRepo(dir string) (*git.Repository, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create repo dir: %w", err)
	}
	repo, err := git.PlainInit(dir, false)
	if err != nil {
		return nil, fmt.Errorf("init repo: %w", err)
	}
	head := plumbing.NewSymbolicReference(plumbing.HEAD, plumbing.NewBranchReferenceName(mainBranch))
	if err := repo.Storer.SetReference(head); err != nil {
		return nil, fmt.Errorf("set HEAD to main: %w", err)
	}
	return repo, nil
}

// Publish commits content as the next version and tags it.
func (s *TrustStore) Publish(_ context.Context, content domain.TrustContent, name, changelog, author string) (domain.TrustVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	numbers, err := s.versionNumbers()
	if err != nil {
		return domain.TrustVersion{}, err
	}
	meta := versionMeta{Number: 1, Name: name, Changelog: changelog, Author: author}
	if len(numbers) > 0 {
		meta.Number = numbers[len(numbers)-1] + 1
	}

	worktree, err := s.repo.Worktree()
	if err != nil {
		return domain.TrustVersion{}, fmt.Errorf("open worktree: %w", err)
	}
	root := worktree.Filesystem.Root()
	if err := writeJSON(filepath.Join(root, contentFile), content); err != nil {
		return domain.TrustVersion{}, err
	}
	if err := writeJSON(filepath.Join(root, versionFile), meta); err != nil {
		return domain.TrustVersion{}, err
	}
	for _, f := range []string{contentFile, versionFile} {
		if _, err := worktree.Add(f); err != nil {
			return domain.TrustVersion{}, fmt.Errorf("git add %s: %w", f, err)
		}
	}

	message := name
	if changelog != "" {
		message += "\n\n" + changelog
	}
	sig := signature(author, s.now())
	hash, err := worktree.Commit(message, &git.CommitOptions{Author: sig, Committer: sig})
	if err != nil {
		return domain.TrustVersion{}, fmt.Errorf("commit version: %w", err)
	}
	if _, err := s.repo.CreateTag(tagName(meta.Number), hash, nil); err != nil {
		return domain.TrustVersion{}, fmt.Errorf("tag version %d: %w", meta.Number, err)
	}

	commit, err := s.repo.CommitObject(hash)
	if err != nil {
		return domain.TrustVersion{}, fmt.Errorf("load commit: %w", err)
	}
	v, err := s.toVersion(commit, true)
	if err != nil {
		return domain.TrustVersion{}, err
	}
	if active, err := s.activeHash(); err == nil {
		v.Active = active == hash
	}
	return v, nil
}

// List returns every version in ascending order without content.
func (s *TrustStore) List(_ context.Context) ([]domain.TrustVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	numbers, err := s.versionNumbers()
	if err != nil {
		return nil, err
	}
	active, err := s.activeHash()
	if err != nil && !errors.Is(err, domain.ErrNoActiveVersion) {
		return nil, err
	}
	versions := make([]domain.TrustVersion, 0, len(numbers))
	for _, n := range numbers {
		commit, err := s.commitOf(n)
		if err != nil {
			return nil, err
		}
		v, err := s.toVersion(commit, false)
		if err != nil {
			return nil, err
		}
		v.Active = commit.Hash == active
		versions = append(versions, v)
	}
	return versions, nil
}

// Get returns a version with its content.
func (s *TrustStore) Get(_ context.Context, number int) (domain.TrustVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	commit, err := s.commitOf(number)
	if err != nil {
		return domain.TrustVersion{}, err
	}
	v, err := s.toVersion(commit, true)
	if err != nil {
		return domain.TrustVersion{}, err
	}
	if active, err := s.activeHash(); err == nil {
		v.Active = active == commit.Hash
	}
	return v, nil
}

// Active returns the version the active branch points at.
func (s *TrustStore) Active(_ context.Context) (domain.TrustVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	hash, err := s.activeHash()
	if err != nil {
		return domain.TrustVersion{}, err
	}
	commit, err := s.repo.CommitObject(hash)
	if err != nil {
		return domain.TrustVersion{}, fmt.Errorf("load active commit: %w", err)
	}
	v, err := s.toVersion(commit, true)
	if err != nil {
		return domain.TrustVersion{}, err
	}
	v.Active = true
	return v, nil
}

// Activate moves the active branch to the commit of the version.
func (s *TrustStore) Activate(_ context.Context, number int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	commit, err := s.commitOf(number)
	if err != nil {
		return err
	}
	ref := plumbing.NewHashReference(plumbing.NewBranchReferenceName(activeBranch), commit.Hash)
	if err := s.repo.Storer.SetReference(ref); err != nil {
		return fmt.Errorf("set active branch: %w", err)
	}
	return nil
}

func (s *TrustStore) versionNumbers() ([]int, error) {
	iter, err := s.repo.Tags()
	if err != nil {
		return nil, fmt.Errorf("list tags: %w", err)
	}
	var numbers []int
	err = iter.ForEach(func(ref *plumbing.Reference) error {
		name := ref.Name().Short()
		if !strings.HasPrefix(name, tagPrefix) {
			return nil
		}
		n, err := strconv.Atoi(strings.TrimPrefix(name, tagPrefix))
		if err != nil || n <= 0 {
			return nil
		}
		numbers = append(numbers, n)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("iterate tags: %w", err)
	}
	sort.Ints(numbers)
	return numbers, nil
}

func (s *TrustStore) commitOf(number int) (*object.Commit, error) {
	ref, err := s.repo.Tag(tagName(number))
	if errors.Is(err, git.ErrTagNotFound) {
		return nil, domain.ErrVersionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("resolve tag v%d: %w", number, err)
	}
	commit, err := s.repo.CommitObject(ref.Hash())
	if err != nil {
		return nil, fmt.Errorf("load commit of v%d: %w", number, err)
	}
	return commit, nil
}

func (s *TrustStore) activeHash() (plumbing.Hash, error) {
	ref, err := s.repo.Reference(plumbing.NewBranchReferenceName(activeBranch), true)
	if errors.Is(err, plumbing.ErrReferenceNotFound) {
		return plumbing.ZeroHash, domain.ErrNoActiveVersion
	}
	if err != nil {
		return plumbing.ZeroHash, fmt.Errorf("resolve active branch: %w", err)
	}
	return ref.Hash(), nil
}

func (s *TrustStore) toVersion(commit *object.Commit, withContent bool) (domain.TrustVersion, error) {
	var meta versionMeta
	if err := readJSON(commit, versionFile, &meta); err != nil {
		return domain.TrustVersion{}, err
	}
	v := domain.TrustVersion{
		Number:    meta.Number,
		Name:      meta.Name,
		Changelog: meta.Changelog,
		Author:    meta.Author,
		Hash:      commit.Hash.String(),
		CreatedAt: commit.Author.When.UTC(),
	}
	if withContent {
		var content domain.TrustContent
		if err := readJSON(commit, contentFile, &content); err != nil {
			return domain.TrustVersion{}, err
		}
		v.Content = &content
	}
	return v, nil
}

func readJSON(commit *object.Commit, name string, dst any) error {
	file, err := commit.File(name)
	if err != nil {
		return fmt.Errorf("load %s from commit: %w", name, err)
	}
	reader, err := file.Reader()
	if err != nil {
		return fmt.Errorf("open %s: %w", name, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("decode %s: %w", name, err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	payload, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, append(payload, '\n'), 0o644); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}

func tagName(number int) string {
	return tagPrefix + strconv.Itoa(number)
}

func signature(author string, when time.Time) *object.Signature {
	if author == "" {
		author = "adops"
	}
	return &object.Signature{
		Name:  author,
		Email: sanitizeEmail(author) + "@trust.adops.local",
		When:  when,
	}
}

func sanitizeEmail(input string) string {
	out := make([]rune, 0, len(input))
	for _, r := range input {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
			out = append(out, r)
		case r == ' ' || r == '-' || r == '_' || r == '.':
			out = append(out, '.')
		}
	}
	if len(out) == 0 {
		return "user"
	}
	return string(out)
}
