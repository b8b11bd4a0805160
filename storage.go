package pdoc

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Store is the flat-file repository: one YAML file per record, one
// directory per entity kind, all under a single data root. The root is
// injected so the whole layer can run against a temporary directory.
type Store struct {
	root string
}

// NewStore returns a Store over the given data root. Directories are
// created lazily on first access.
func NewStore(root string) *Store { return &Store{root: root} }

// OpenStore resolves the data root from the config and returns a
// Store over it.
func OpenStore(cfg Config) (*Store, error) {
	root, err := cfg.DataRoot()
	if err != nil {
		return nil, fmt.Errorf("resolving data root: %w", err)
	}
	return NewStore(root), nil
}

// dir returns root/<kind>, creating it (and parents) if absent.
func (s *Store) dir(kind string) (string, error) {
	dir := filepath.Join(s.root, kind)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating %s directory: %w", kind, err)
	}
	return dir, nil
}

func (s *Store) ClientsDir() (string, error)  { return s.dir("clients") }
func (s *Store) ProjectsDir() (string, error) { return s.dir("projects") }
func (s *Store) InvoicesDir() (string, error) { return s.dir("invoices") }
func (s *Store) ReceiptsDir() (string, error) { return s.dir("receipts") }
func (s *Store) PDFsDir() (string, error)     { return s.dir("pdfs") }
func (s *Store) LedgerDir() (string, error)   { return s.dir("ledger") }

// mePath returns the location of the singleton profile file.
func (s *Store) mePath() (string, error) {
	if err := os.MkdirAll(s.root, 0o755); err != nil {
		return "", fmt.Errorf("creating data root: %w", err)
	}
	return filepath.Join(s.root, "me.yaml"), nil
}

// saveYAML writes v as YAML to path, overwriting any previous record
// with the same key (last write wins).
func saveYAML(path string, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("serializing %q: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing %q: %w", path, err)
	}
	return nil
}

// decodeStrict unmarshals YAML into v, rejecting unknown fields.
func decodeStrict(data []byte, v any) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	return dec.Decode(v)
}

// loadYAML reads the record at path into v. A missing file keeps
// fs.ErrNotExist in the error chain.
func loadYAML(path string, v any) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("opening %q: %w", path, err)
	}
	if err := decodeStrict(data, v); err != nil {
		return fmt.Errorf("deserializing %q: %w", path, err)
	}
	return nil
}

// listIds enumerates the Ids encoded in a kind directory's filenames.
// Entries that do not decode into an Id are silently skipped.
func listIds(dir string) ([]Id, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", dir, err)
	}
	var ids []Id
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		id, err := IdFromFilename(entry.Name())
		if err != nil {
			// TODO: consider logging skipped entries instead of
			// ignoring them.
			continue
		}
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids, nil
}

// listNumbers enumerates the numeric keys encoded in a kind
// directory's filenames, silently skipping undecodable entries.
func listNumbers(dir string) ([]uint32, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("listing %q: %w", dir, err)
	}
	var nums []uint32
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		stem, ok := strings.CutSuffix(entry.Name(), idExt)
		if !ok {
			continue
		}
		n, err := strconv.ParseUint(stem, 10, 32)
		if err != nil {
			continue
		}
		nums = append(nums, uint32(n))
	}
	slices.Sort(nums)
	return nums, nil
}

// numberFilename names the file for a numeric-keyed record.
func numberFilename(n uint32) string {
	return strconv.FormatUint(uint64(n), 10) + idExt
}

// SaveClient persists a client under its name.
func (s *Store) SaveClient(c Client) error {
	dir, err := s.ClientsDir()
	if err != nil {
		return err
	}
	return saveYAML(filepath.Join(dir, c.Name.Filename()), c)
}

// LoadClient reads the client named id, failing if it is absent or
// does not match the schema.
func (s *Store) LoadClient(id Id) (Client, error) {
	dir, err := s.ClientsDir()
	if err != nil {
		return Client{}, err
	}
	var c Client
	if err := loadYAML(filepath.Join(dir, id.Filename()), &c); err != nil {
		return Client{}, fmt.Errorf("finding client %q: %w", id, err)
	}
	return c, nil
}

// ListClients returns the names of all saved clients.
func (s *Store) ListClients() ([]Id, error) {
	dir, err := s.ClientsDir()
	if err != nil {
		return nil, err
	}
	return listIds(dir)
}

// SaveProject persists a project under its name.
func (s *Store) SaveProject(p Project) error {
	dir, err := s.ProjectsDir()
	if err != nil {
		return err
	}
	return saveYAML(filepath.Join(dir, p.Name.Filename()), p)
}

// LoadProject reads the project named id.
func (s *Store) LoadProject(id Id) (Project, error) {
	dir, err := s.ProjectsDir()
	if err != nil {
		return Project{}, err
	}
	var p Project
	if err := loadYAML(filepath.Join(dir, id.Filename()), &p); err != nil {
		return Project{}, fmt.Errorf("finding project %q: %w", id, err)
	}
	return p, nil
}

// ListProjects returns the names of all saved projects.
func (s *Store) ListProjects() ([]Id, error) {
	dir, err := s.ProjectsDir()
	if err != nil {
		return nil, err
	}
	return listIds(dir)
}

// SaveInvoice persists an invoice under its number.
func (s *Store) SaveInvoice(inv Invoice) error {
	dir, err := s.InvoicesDir()
	if err != nil {
		return err
	}
	return saveYAML(filepath.Join(dir, numberFilename(inv.Number)), inv)
}

// LoadInvoice reads the invoice with the given number.
func (s *Store) LoadInvoice(number uint32) (Invoice, error) {
	dir, err := s.InvoicesDir()
	if err != nil {
		return Invoice{}, err
	}
	var inv Invoice
	if err := loadYAML(filepath.Join(dir, numberFilename(number)), &inv); err != nil {
		return Invoice{}, fmt.Errorf("finding invoice %d: %w", number, err)
	}
	return inv, nil
}

// ListInvoices returns the numbers of all saved invoices.
func (s *Store) ListInvoices() ([]uint32, error) {
	dir, err := s.InvoicesDir()
	if err != nil {
		return nil, err
	}
	return listNumbers(dir)
}

// SaveReceipt persists a receipt under its invoice number.
func (s *Store) SaveReceipt(r Receipt) error {
	dir, err := s.ReceiptsDir()
	if err != nil {
		return err
	}
	return saveYAML(filepath.Join(dir, numberFilename(r.InvoiceNum)), r)
}

// LoadReceipt reads the receipt for the given invoice number.
func (s *Store) LoadReceipt(number uint32) (Receipt, error) {
	dir, err := s.ReceiptsDir()
	if err != nil {
		return Receipt{}, err
	}
	var r Receipt
	if err := loadYAML(filepath.Join(dir, numberFilename(number)), &r); err != nil {
		return Receipt{}, fmt.Errorf("finding receipt %d: %w", number, err)
	}
	return r, nil
}

// ListReceipts returns the invoice numbers of all saved receipts.
func (s *Store) ListReceipts() ([]uint32, error) {
	dir, err := s.ReceiptsDir()
	if err != nil {
		return nil, err
	}
	return listNumbers(dir)
}

// SaveMe persists the operator's profile.
func (s *Store) SaveMe(me Me) error {
	path, err := s.mePath()
	if err != nil {
		return err
	}
	return saveYAML(path, me)
}

// LoadMe reads the operator's profile, failing if it is absent.
func (s *Store) LoadMe() (Me, error) {
	path, err := s.mePath()
	if err != nil {
		return Me{}, err
	}
	var me Me
	if err := loadYAML(path, &me); err != nil {
		return Me{}, fmt.Errorf("reading personal info: %w", err)
	}
	return me, nil
}
