package patients

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

type MedicalRecordMongoRepository struct {
	Collection *mongo.Collection
}

func NewMedicalRecordMongoRepository(db *mongo.Client, dbName string) contracts.MedicalRecordRepository {
	return &MedicalRecordMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionMedicalRecords),
	}
}

func (r *MedicalRecordMongoRepository) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalRecord, error) {
	findOptions := options.Find().SetSort(bson.M{"date": 1})
	cursor, err := r.Collection.Find(ctx, bson.M{"patientId": patientID}, findOptions)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	records := make([]models.MedicalRecord, 0)
	if err := cursor.All(ctx, &records); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return records, nil
}

func (r *MedicalRecordMongoRepository) Insert(ctx context.Context, record *models.MedicalRecord) error {
	_, err := r.Collection.InsertOne(ctx, record)
	if err != nil {
		return exceptions.ErrMongoDBInsertDocument(err)
	}
	return nil
}

func (r *MedicalRecordMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := r.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}

func (r *MedicalRecordMongoRepository) DeleteAll(ctx context.Context) error {
	_, err := r.Collection.DeleteMany(ctx, bson.M{})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
