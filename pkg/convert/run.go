package convert

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/yookoala/realpath"

	"xml2kml/pkg/idlist"
	"xml2kml/pkg/kmlgen"
	"xml2kml/pkg/options"
	"xml2kml/pkg/placedb"
	"xml2kml/pkg/places"
	"xml2kml/pkg/tagchunk"
)

// SetupError reports a file that could not be opened or created; nothing
// has been converted when it is returned.
type SetupError struct {
	Op   string
	Path string
	Err  error
}

func (e *SetupError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *SetupError) Unwrap() error {
	return e.Err
}

// Run converts cfg.Infile to cfg.Outfile, plus the optional id list and
// SQLite export. Every file opened here is closed before Run returns.
func Run(cfg *options.Config, stdout, stderr io.Writer) (res Result, err error) {
	in, err := os.Open(cfg.Infile)
	if err != nil {
		return res, &SetupError{"open input", cfg.Infile, err}
	}
	defer in.Close()

	out, err := os.Create(cfg.Outfile)
	if err != nil {
		return res, &SetupError{"create output", cfg.Outfile, err}
	}
	defer closeFile(out, &err)

	var ids *idlist.Collector
	if cfg.IDFile != "" {
		idf, ierr := os.Create(cfg.IDFile)
		if ierr != nil {
			return res, &SetupError{"create id file", cfg.IDFile, ierr}
		}
		defer closeFile(idf, &err)
		idw := bufio.NewWriter(idf)
		defer flush(idw, &err)
		ids = idlist.New(idw)
	}

	c := &Converter{
		Name:    cfg.Name,
		Unique:  cfg.Unique,
		Verbose: cfg.Verbose,
		Out:     stdout,
		Errs:    stderr,
		IDs:     ids,
	}

	if cfg.SQLFile != "" {
		db, derr := placedb.Open(cfg.SQLFile)
		if derr != nil {
			return res, &SetupError{"create database", cfg.SQLFile, derr}
		}
		defer func() {
			if cerr := db.Close(err == nil); err == nil {
				err = cerr
			}
		}()
		c.Rec = db
	}

	c.logf("Reading input from %s\n", cfg.Infile)
	br := bufio.NewReader(in)
	switch places.EvinceFileType(br) {
	case places.IS_EMPTY:
		c.logf("Input %s is empty\n", cfg.Infile)
	case places.IS_XML, places.IS_UNKNOWN:
		c.logf("Input %s does not look like a place search result\n", cfg.Infile)
	}

	w := bufio.NewWriter(out)
	sink := kmlgen.NewSink(w, cfg.Outfile, cfg.Styled, cfg.Kmz, cfg.Dms, cfg.Gradient)
	res, err = c.Convert(tagchunk.NewScanner(br), sink)
	if err != nil {
		return res, err
	}
	if err = w.Flush(); err != nil {
		return res, fmt.Errorf("write %s: %w", cfg.Outfile, err)
	}

	res.Output = cfg.Outfile
	if rp, rerr := realpath.Realpath(cfg.Outfile); rerr == nil && rp != "" {
		res.Output = rp
	}
	if fi, serr := out.Stat(); serr == nil {
		res.Size = fi.Size()
	}
	fmt.Fprintf(stdout, "done. %d search results written to %s (%s)\n",
		res.Converted, res.Output, humanize.Bytes(uint64(res.Size)))
	return res, nil
}

func closeFile(f *os.File, err *error) {
	if cerr := f.Close(); *err == nil && cerr != nil {
		*err = fmt.Errorf("close %s: %w", f.Name(), cerr)
	}
}

func flush(w *bufio.Writer, err *error) {
	if ferr := w.Flush(); *err == nil && ferr != nil {
		*err = fmt.Errorf("write ids: %w", ferr)
	}
}
