package datasets

import "compress/lzw"
import "encoding/json"
import "io"
import "os"
import "github.com/pkg/errors"

// WriteCompressedToFile writes the dataset to a .json.lzw file
func (d *Dataset) WriteCompressedToFile(name string) error {
	file, err := os.Create(name)
	if err != nil {
		return err
	}
	err = d.WriteCompressed(file)
	if cerr := file.Close(); err == nil {
		err = cerr
	}
	return err
}

// WriteCompressed writes the dataset as lzw compressed json
func (d *Dataset) WriteCompressed(w io.Writer) error {
	lw := lzw.NewWriter(w, lzw.LSB, 8)
	if err := json.NewEncoder(lw).Encode(d); err != nil {
		lw.Close()
		return errors.Wrap(err, "datasets: encode")
	}
	return lw.Close()
}

// ReadCompressedFromFile reads a dataset from a .json.lzw file
func ReadCompressedFromFile(name string) (*Dataset, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return ReadCompressed(file)
}

// ReadCompressed reads lzw compressed json written by WriteCompressed
func ReadCompressed(r io.Reader) (*Dataset, error) {
	lr := lzw.NewReader(r, lzw.LSB, 8)
	defer lr.Close()

	var d Dataset
	if err := json.NewDecoder(lr).Decode(&d); err != nil {
		return nil, errors.Wrap(err, "datasets: decode")
	}
	if err := d.Validate(); err != nil {
		return nil, err
	}
	return &d, nil
}
