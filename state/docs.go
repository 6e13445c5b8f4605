package state

import (
	"maps"
	"os"
	"slices"
	"strings"
	"sync"

	"github.com/mfdls/medford-lsp/parser"
	. "github.com/mfdls/medford-lsp/types"
	. "github.com/mfdls/medford-lsp/utils"
	"github.com/mfdls/medford-lsp/validation"
	"github.com/tliron/commonlog"
)

var log = commonlog.GetLogger("mfdls.state")

type Doc struct {
	Uri     Uri
	Text    string
	Lines   []string
	Version int

	// Macros is replaced only by passes that did not fail
	Macros      parser.MacroTable
	Details     []parser.DetailRecord
	Diagnostics []Diagnostic
}

type Docs map[Uri]*Doc

// Store holds the open documents. It is shared by request handlers and the
// diagnostics debouncer.
type Store struct {
	lock sync.RWMutex
	docs Docs
}

func NewStore() *Store {
	return &Store{
		docs: make(Docs),
	}
}

func CreateDoc(uri Uri, text string) *Doc {
	return &Doc{
		Uri:         uri,
		Text:        text,
		Lines:       parser.SplitLines(text),
		Macros:      parser.MacroTable{},
		Details:     make([]parser.DetailRecord, 0),
		Diagnostics: make([]Diagnostic, 0),
	}
}

func (doc *Doc) setText(text string) {
	doc.Text = text
	doc.Lines = parser.SplitLines(text)
	doc.Version++
}

// Line returns the text of a 0-based line or "" outside the document.
func (doc *Doc) Line(index int) string {
	if index < 0 || index >= len(doc.Lines) {
		return ""
	}

	return doc.Lines[index]
}

func (doc *Doc) clone() *Doc {
	c := *doc
	c.Lines = slices.Clone(doc.Lines)
	c.Macros = maps.Clone(doc.Macros)
	c.Details = slices.Clone(doc.Details)
	c.Diagnostics = slices.Clone(doc.Diagnostics)
	return &c
}

func (store *Store) Open(uri Uri, text string) *Doc {
	store.lock.Lock()
	defer store.lock.Unlock()

	doc, ok := store.docs[uri]

	if ok {
		if doc.Text != text {
			doc.setText(text)
		}

		return doc.clone()
	}

	doc = CreateDoc(uri, text)
	store.docs[uri] = doc

	return doc.clone()
}

// Load opens and validates a document from disk unless it is already open.
func (store *Store) Load(uri Uri) (*Doc, error) {
	if doc := store.Get(uri); doc != nil {
		return doc, nil
	}

	text, err := GetText(uri)

	if err != nil {
		return nil, err
	}

	doc := store.Open(uri, text)

	if validated, _ := store.Validate(uri); validated != nil {
		doc = validated
	}

	return doc, nil
}

func (store *Store) SetText(uri Uri, text string) {
	store.lock.Lock()
	defer store.lock.Unlock()

	doc, ok := store.docs[uri]

	if !ok {
		store.docs[uri] = CreateDoc(uri, text)
		return
	}

	doc.setText(text)
}

// Change applies one incremental edit. A nil range replaces the whole text.
func (store *Store) Change(uri Uri, r *Range, text string) bool {
	store.lock.Lock()
	defer store.lock.Unlock()

	doc, ok := store.docs[uri]

	if !ok {
		log.Warningf("change of unknown document %s", uri)
		return false
	}

	if r == nil {
		doc.setText(text)
		return true
	}

	doc.setText(ChangeText(doc.Text, *r, text))

	return true
}

func (store *Store) Close(uri Uri) {
	store.lock.Lock()
	defer store.lock.Unlock()

	delete(store.docs, uri)
}

// Get returns a copy of the document or nil.
func (store *Store) Get(uri Uri) *Doc {
	store.lock.RLock()
	defer store.lock.RUnlock()

	doc, ok := store.docs[uri]

	if !ok {
		return nil
	}

	return doc.clone()
}

func (store *Store) Uris() []Uri {
	store.lock.RLock()
	defer store.lock.RUnlock()

	return slices.Sorted(maps.Keys(store.docs))
}

// Validate re-tokenizes the document from scratch and stores the result.
// It returns a nil Doc when the document was closed or edited meanwhile.
// Macros are replaced even when the document has syntax errors. Only an
// aborted pass keeps the previous macro table so completion still works
// while the document is broken.
func (store *Store) Validate(uri Uri) (*Doc, error) {
	doc := store.Get(uri)

	if doc == nil {
		return nil, os.ErrNotExist
	}

	res, err := validation.Validate(uri, doc.Text)

	store.lock.Lock()
	defer store.lock.Unlock()

	current, ok := store.docs[uri]

	if !ok || current.Version != doc.Version {
		// a newer edit will be validated by its own run
		return nil, err
	}

	current.Details = res.Details
	current.Diagnostics = res.Diagnostics

	if !res.Aborted {
		current.Macros = res.Macros
	}

	return current.clone(), err
}

func GetText(uri Uri) (text string, err error) {
	path, err := UriToPath(uri)

	if err != nil {
		return
	}

	bytes, err := os.ReadFile(path)

	if err != nil {
		return
	}

	text = string(bytes)

	return
}

// Block is a novel token together with its minor and continuation lines.
// Start and End are 0-based line indexes.
type Block struct {
	Record parser.DetailRecord
	Start  int
	End    int
}

// Blocks splits the document by the novel tokens of the last validation.
// A block ends before the next novel token, not counting trailing blank,
// comment and macro lines.
func (doc *Doc) Blocks() []Block {
	blocks := make([]Block, 0, len(doc.Details))
	last := len(doc.Lines) - 1

	for i, record := range doc.Details {
		start := record.Line - 1

		if start > last {
			break
		}

		end := last

		if i+1 < len(doc.Details) {
			end = min(doc.Details[i+1].Line-2, last)
		}

		for end > start && !isBodyLine(doc.Lines[end]) {
			end--
		}

		blocks = append(blocks, Block{
			Record: record,
			Start:  start,
			End:    end,
		})
	}

	return blocks
}

func isBodyLine(line string) bool {
	text := strings.TrimSpace(line)

	return text != "" &&
		!strings.HasPrefix(text, parser.CommentMarker) &&
		!strings.HasPrefix(text, parser.MacroPrefix)
}
