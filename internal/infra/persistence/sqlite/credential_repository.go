package sqlite

import (
	"context"
	"strconv"

	"automarket/internal/domain/constants"
	"automarket/internal/domain/entity"
	domainerrors "automarket/internal/domain/errors"
	"automarket/internal/domain/repository"
	"automarket/internal/infra/persistence/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// credentialRepository implements the repository.CredentialRepository interface.
type credentialRepository struct {
	db *gorm.DB
}

// NewCredentialRepository is the constructor for credentialRepository.
func NewCredentialRepository(db *gorm.DB) repository.CredentialRepository {
	return &credentialRepository{
		db: db,
	}
}

// Load reads every session key in one query.
func (repo *credentialRepository) Load(ctx context.Context) (*entity.Credentials, error) {
	var settings []model.SettingModel

	if err := repo.db.WithContext(ctx).
		Where("key IN ?", []string{
			constants.SettingAPIURL,
			constants.SettingAPIKey,
			constants.SettingIsLoggedIn,
			constants.SettingToken,
		}).
		Find(&settings).Error; err != nil {
		return nil, domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	return toCredentialsDomain(settings), nil
}

// SaveLogin writes url, key and the logged-in flag atomically.
func (repo *credentialRepository) SaveLogin(ctx context.Context, apiURL, apiKey string) error {
	return repo.upsert(ctx,
		model.SettingModel{Key: constants.SettingAPIURL, Value: apiURL},
		model.SettingModel{Key: constants.SettingAPIKey, Value: apiKey},
		model.SettingModel{Key: constants.SettingIsLoggedIn, Value: strconv.FormatBool(true)},
	)
}

// SetLoggedIn only touches the isLoggedIn key.
func (repo *credentialRepository) SetLoggedIn(ctx context.Context, loggedIn bool) error {
	return repo.upsert(ctx, model.SettingModel{Key: constants.SettingIsLoggedIn, Value: strconv.FormatBool(loggedIn)})
}

// SaveToken stores the dashboard token, deleting the row when token is empty.
func (repo *credentialRepository) SaveToken(ctx context.Context, token string) error {
	if token == "" {
		if err := repo.db.WithContext(ctx).
			Where("key = ?", constants.SettingToken).
			Delete(&model.SettingModel{}).Error; err != nil {
			return domainerrors.ErrStorageFailed.WithDetails(err.Error())
		}

		return nil
	}

	return repo.upsert(ctx, model.SettingModel{Key: constants.SettingToken, Value: token})
}

func (repo *credentialRepository) upsert(ctx context.Context, settings ...model.SettingModel) error {
	err := repo.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).Create(&settings).Error
	})
	if err != nil {
		return domainerrors.ErrStorageFailed.WithDetails(err.Error())
	}

	return nil
}

// toCredentialsDomain maps stored rows onto the session; only the exact string "true" counts as logged in.
func toCredentialsDomain(settings []model.SettingModel) *entity.Credentials {
	creds := &entity.Credentials{}
	for _, setting := range settings {
		switch setting.Key {
		case constants.SettingAPIURL:
			creds.APIURL = setting.Value
		case constants.SettingAPIKey:
			creds.APIKey = setting.Value
		case constants.SettingIsLoggedIn:
			creds.IsLoggedIn = setting.Value == entity.LoggedInValue
		case constants.SettingToken:
			creds.Token = setting.Value
		}
	}

	return creds
}
