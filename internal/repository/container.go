package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Doctype  DoctypeRepo
	Document DocumentRepo
	Record   RecordRepo

	db *gorm.DB
}

func New(db *gorm.DB) *Repos {
	return &Repos{
		Doctype:  NewDoctypeRepo(db),
		Document: NewDocumentRepo(db),
		Record:   NewRecordRepo(db),
		db:       db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Doctype:  r.Doctype.WithTx(tx),
		Document: r.Document.WithTx(tx),
		Record:   r.Record,
		db:       tx,
	}
}

func (r *Repos) ExecTx(fn func(*Repos) error) error {
	// No db handle means the container was assembled from fakes; run the
	// callback against the container itself.
	if r.db == nil {
		return fn(r)
	}
	return r.db.Transaction(func(tx *gorm.DB) error {
		return fn(r.WithTx(tx))
	})
}
