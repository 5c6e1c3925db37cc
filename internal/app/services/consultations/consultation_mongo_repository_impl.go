package consultations

import (
	"context"

	"mycare-service/internal/app/contracts"
	"mycare-service/internal/app/models"
	"mycare-service/internal/pkg/constvars"
	"mycare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ConsultationMongoRepository struct {
	Collection *mongo.Collection
}

func NewConsultationMongoRepository(db *mongo.Client, dbName string) contracts.ConsultationRepository {
	return &ConsultationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionConsultations),
	}
}

func (r *ConsultationMongoRepository) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	var consultation models.Consultation
	err := r.Collection.FindOne(ctx, bson.M{"_id": consultationID}).Decode(&consultation)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &consultation, nil
}

func (r *ConsultationMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error) {
	return r.findAll(ctx, bson.M{"patientId": patientID})
}

func (r *ConsultationMongoRepository) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Consultation, error) {
	return r.findAll(ctx, bson.M{"doctorId": doctorID})
}

func (r *ConsultationMongoRepository) findAll(ctx context.Context, filter bson.M) ([]models.Consultation, error) {
	findOptions := options.Find().SetSort(bson.M{"date": -1})
	cursor, err := r.Collection.Find(ctx, filter, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	consultations := make([]models.Consultation, 0)
	if err := cursor.All(ctx, &consultations); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return consultations, nil
}

func (r *ConsultationMongoRepository) Insert(ctx context.Context, consultation *models.Consultation) error {
	_, err := r.Collection.InsertOne(ctx, consultation)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *ConsultationMongoRepository) Update(ctx context.Context, consultation *models.Consultation) error {
	filter := bson.M{"_id": consultation.ID}
	update := bson.M{"$set": consultation}

	_, err := r.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (r *ConsultationMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *ConsultationMongoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
