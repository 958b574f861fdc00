package ensemble

import (
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/TuftsBCB/io/pdb"
	"github.com/TuftsBCB/structure"

	"github.com/BurntSushi/sampcon/rmsd"
)

// Model is a single structural model: the coordinates of its particles.
type Model struct {
	Name   string
	Coords []rmsd.Coords
}

// Models holds the coordinates of a whole population, indexed in population
// order, along with the per-particle masses shared by every model.
type Models struct {
	List   []Model
	masses []float64
}

// NewModels checks that every model has the same number of particles. masses
// may be nil, in which case every particle has unit mass.
func NewModels(list []Model, masses []float64) (*Models, error) {
	if len(list) == 0 {
		return nil, fmt.Errorf("There are no models.")
	}
	size := len(list[0].Coords)
	for _, m := range list {
		if len(m.Coords) != size {
			return nil, fmt.Errorf("Model '%s' has %d particles but model "+
				"'%s' has %d particles.", m.Name, len(m.Coords),
				list[0].Name, size)
		}
	}
	if masses != nil && len(masses) != size {
		return nil, fmt.Errorf("There are %d masses for models with %d "+
			"particles.", len(masses), size)
	}
	return &Models{List: list, masses: masses}, nil
}

// Coords returns the coordinates of the model at population index i.
func (ms *Models) Coords(i int) []rmsd.Coords {
	return ms.List[i].Coords
}

// Masses returns the per-particle masses, or nil for unit masses.
func (ms *Models) Masses() []float64 {
	return ms.masses
}

// Len returns the number of models. A nil *Models has none.
func (ms *Models) Len() int {
	if ms == nil {
		return 0
	}
	return len(ms.List)
}

// All returns the coordinates of every model in population order.
func (ms *Models) All() [][]rmsd.Coords {
	all := make([][]rmsd.Coords, len(ms.List))
	for i, m := range ms.List {
		all[i] = m.Coords
	}
	return all
}

// ReadPDBModel reads the carbon-alpha coordinates of every chain in a PDB
// file. If the file name ends with ".gz", gzip decompression will be used.
func ReadPDBModel(path string) (Model, error) {
	f, err := os.Open(path)
	if err != nil {
		return Model{}, err
	}
	defer f.Close()

	var reader io.Reader = f
	if filepath.Ext(path) == ".gz" {
		gz, err := gzip.NewReader(f)
		if err != nil {
			return Model{}, err
		}
		defer gz.Close()
		reader = gz
	}

	entry, err := pdb.Read(reader, path)
	if err != nil {
		return Model{}, err
	}

	model := Model{Name: filepath.Base(path)}
	for _, chain := range entry.Chains {
		model.Coords = append(model.Coords, fromStructure(chain.CaAtoms())...)
	}
	if len(model.Coords) == 0 {
		return Model{}, fmt.Errorf("'%s' has no carbon-alpha ATOM records.",
			path)
	}
	return model, nil
}

// LoadModels reads the PDB file of every model in the population. Model
// names are resolved relative to dir. See NewModels for masses.
func LoadModels(dir string, pop *Population, masses []float64) (*Models, error) {
	list := make([]Model, pop.Len())
	for i, name := range pop.names {
		m, err := ReadPDBModel(filepath.Join(dir, name))
		if err != nil {
			return nil, fmt.Errorf("Could not read model %d: %s", i, err)
		}
		m.Name = name
		list[i] = m
	}
	return NewModels(list, masses)
}

func fromStructure(atoms []structure.Coords) []rmsd.Coords {
	cs := make([]rmsd.Coords, len(atoms))
	for i, atom := range atoms {
		cs[i] = rmsd.Coords{atom.X, atom.Y, atom.Z}
	}
	return cs
}
