package repository

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"interview-scheduler/internal/domain"
)

// maxListResults acota cualquier lectura de la colección; no hay paginación.
const maxListResults = 1000

const defaultOpTimeout = 5 * time.Second

// InterviewRepository define el contrato de persistencia para entrevistas.
type InterviewRepository interface {
	Insert(ctx context.Context, interview domain.Interview) error
	ListAll(ctx context.Context) ([]domain.Interview, error)
	ListByDate(ctx context.Context, date string) ([]domain.Interview, error)
}

// MongoInterviewRepository implementa InterviewRepository sobre una colección
// de MongoDB.
type MongoInterviewRepository struct {
	coll      *mongo.Collection
	opTimeout time.Duration
}

func NewMongoInterviewRepository(db *mongo.Database) *MongoInterviewRepository {
	return &MongoInterviewRepository{
		coll:      db.Collection("interviews"),
		opTimeout: defaultOpTimeout,
	}
}

// interviewDoc es la forma almacenada del registro: created_at viaja como
// texto ISO-8601 de ancho fijo, nunca como fecha nativa del backend.
type interviewDoc struct {
	ID            string `bson:"id"`
	CandidateName string `bson:"candidate_name"`
	CompanyName   string `bson:"company_name"`
	InterviewDate string `bson:"interview_date"`
	InterviewTime string `bson:"interview_time"`
	Duration      int    `bson:"duration"`
	CreatedAt     string `bson:"created_at"`
}

func toDoc(interview domain.Interview) interviewDoc {
	return interviewDoc{
		ID:            interview.ID,
		CandidateName: interview.CandidateName,
		CompanyName:   interview.CompanyName,
		InterviewDate: interview.InterviewDate,
		InterviewTime: interview.InterviewTime,
		Duration:      interview.Duration,
		CreatedAt:     domain.FormatCreatedAt(interview.CreatedAt),
	}
}

func fromDoc(doc interviewDoc) (domain.Interview, error) {
	createdAt, err := domain.ParseCreatedAt(doc.CreatedAt)
	if err != nil {
		return domain.Interview{}, err
	}
	return domain.Interview{
		ID:            doc.ID,
		CandidateName: doc.CandidateName,
		CompanyName:   doc.CompanyName,
		InterviewDate: doc.InterviewDate,
		InterviewTime: doc.InterviewTime,
		Duration:      doc.Duration,
		CreatedAt:     createdAt,
	}, nil
}

func (r *MongoInterviewRepository) Insert(ctx context.Context, interview domain.Interview) error {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()
	_, err := r.coll.InsertOne(ctx, toDoc(interview))
	return err
}

func (r *MongoInterviewRepository) ListAll(ctx context.Context) ([]domain.Interview, error) {
	return r.find(ctx, bson.D{})
}

func (r *MongoInterviewRepository) ListByDate(ctx context.Context, date string) ([]domain.Interview, error) {
	return r.find(ctx, bson.D{{Key: "interview_date", Value: date}})
}

func (r *MongoInterviewRepository) find(ctx context.Context, filter bson.D) ([]domain.Interview, error) {
	ctx, cancel := context.WithTimeout(ctx, r.opTimeout)
	defer cancel()

	// El _id interno del backend jamás sale de esta capa.
	opts := options.Find().
		SetProjection(bson.D{{Key: "_id", Value: 0}}).
		SetLimit(maxListResults)

	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []interviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	interviews := make([]domain.Interview, 0, len(docs))
	for _, doc := range docs {
		interview, err := fromDoc(doc)
		if err != nil {
			return nil, err
		}
		interviews = append(interviews, interview)
	}
	return interviews, nil
}
