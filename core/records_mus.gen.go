// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slicexU6BL25qwUgy77JLHAvvOQΞΞ = ord.NewSliceSer[string](ord.String)
	sliceΣ8ALGDXIjYSVwa0bLAYnVgΞΞ = ord.NewSliceSer[float32](varint.Float32)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return ord.String.Marshal(string(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return ord.String.Size(string(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return ord.String.Skip(bs)
}

var FingerprintMUS = fingerprintMUS{}

type fingerprintMUS struct{}

func (s fingerprintMUS) Marshal(v Fingerprint, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s fingerprintMUS) Unmarshal(bs []byte) (v Fingerprint, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Fingerprint(tmp)
	return
}

func (s fingerprintMUS) Size(v Fingerprint) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s fingerprintMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var MetadataStatusMUS = metadataStatusMUS{}

type metadataStatusMUS struct{}

func (s metadataStatusMUS) Marshal(v MetadataStatus, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s metadataStatusMUS) Unmarshal(bs []byte) (v MetadataStatus, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = MetadataStatus(tmp)
	return
}

func (s metadataStatusMUS) Size(v MetadataStatus) (size int) {
	return varint.Int.Size(int(v))
}

func (s metadataStatusMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.DocID, bs)
	n += ord.String.Marshal(v.Filename, bs[n:])
	n += FingerprintMUS.Marshal(v.Fingerprint, bs[n:])
	n += MetadataStatusMUS.Marshal(v.Status, bs[n:])
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Summary, bs[n:])
	n += ord.String.Marshal(v.LevelOfGovernment, bs[n:])
	n += ord.String.Marshal(v.ResponsibleProvince, bs[n:])
	n += ord.String.Marshal(v.ResponsibleCity, bs[n:])
	n += slicexU6BL25qwUgy77JLHAvvOQΞΞ.Marshal(v.Authors, bs[n:])
	n += slicexU6BL25qwUgy77JLHAvvOQΞΞ.Marshal(v.Editors, bs[n:])
	n += ord.String.Marshal(v.Publisher, bs[n:])
	n += ord.String.Marshal(v.PublishDate, bs[n:])
	n += ord.String.Marshal(v.PublisherLocation, bs[n:])
	n += ord.String.Marshal(v.CopyrightYear, bs[n:])
	n += ord.String.Marshal(v.ISSN, bs[n:])
	n += ord.String.Marshal(v.ISBN, bs[n:])
	n += slicexU6BL25qwUgy77JLHAvvOQΞΞ.Marshal(v.Languages, bs[n:])
	n += ord.String.Marshal(v.Category, bs[n:])
	n += slicexU6BL25qwUgy77JLHAvvOQΞΞ.Marshal(v.Keywords, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	v.DocID, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Filename, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Fingerprint, n1, err = FingerprintMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Status, n1, err = MetadataStatusMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Summary, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.LevelOfGovernment, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ResponsibleProvince, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ResponsibleCity, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Authors, n1, err = slicexU6BL25qwUgy77JLHAvvOQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Editors, n1, err = slicexU6BL25qwUgy77JLHAvvOQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Publisher, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PublishDate, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.PublisherLocation, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CopyrightYear, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ISSN, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.ISBN, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Languages, n1, err = slicexU6BL25qwUgy77JLHAvvOQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Category, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Keywords, n1, err = slicexU6BL25qwUgy77JLHAvvOQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.DocID)
	size += ord.String.Size(v.Filename)
	size += FingerprintMUS.Size(v.Fingerprint)
	size += MetadataStatusMUS.Size(v.Status)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Summary)
	size += ord.String.Size(v.LevelOfGovernment)
	size += ord.String.Size(v.ResponsibleProvince)
	size += ord.String.Size(v.ResponsibleCity)
	size += slicexU6BL25qwUgy77JLHAvvOQΞΞ.Size(v.Authors)
	size += slicexU6BL25qwUgy77JLHAvvOQΞΞ.Size(v.Editors)
	size += ord.String.Size(v.Publisher)
	size += ord.String.Size(v.PublishDate)
	size += ord.String.Size(v.PublisherLocation)
	size += ord.String.Size(v.CopyrightYear)
	size += ord.String.Size(v.ISSN)
	size += ord.String.Size(v.ISBN)
	size += slicexU6BL25qwUgy77JLHAvvOQΞΞ.Size(v.Languages)
	size += ord.String.Size(v.Category)
	size += slicexU6BL25qwUgy77JLHAvvOQΞΞ.Size(v.Keywords)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = FingerprintMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = MetadataStatusMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicexU6BL25qwUgy77JLHAvvOQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicexU6BL25qwUgy77JLHAvvOQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicexU6BL25qwUgy77JLHAvvOQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slicexU6BL25qwUgy77JLHAvvOQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var PassageMUS = passageMUS{}

type passageMUS struct{}

func (s passageMUS) Marshal(v Passage, bs []byte) (n int) {
	n = IDMUS.Marshal(v.DocID, bs)
	n += varint.Int.Marshal(v.ChunkID, bs[n:])
	n += ord.String.Marshal(v.Content, bs[n:])
	return n + sliceΣ8ALGDXIjYSVwa0bLAYnVgΞΞ.Marshal(v.Vector, bs[n:])
}

func (s passageMUS) Unmarshal(bs []byte) (v Passage, n int, err error) {
	v.DocID, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.ChunkID, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Content, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = sliceΣ8ALGDXIjYSVwa0bLAYnVgΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s passageMUS) Size(v Passage) (size int) {
	size = IDMUS.Size(v.DocID)
	size += varint.Int.Size(v.ChunkID)
	size += ord.String.Size(v.Content)
	return size + sliceΣ8ALGDXIjYSVwa0bLAYnVgΞΞ.Size(v.Vector)
}

func (s passageMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = varint.Int.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceΣ8ALGDXIjYSVwa0bLAYnVgΞΞ.Skip(bs[n:])
	n += n1
	return
}
