package impl

import (
	"context"
	"testing"

	"boxbot/internal/domain/entity"
	domainerrors "boxbot/internal/domain/errors"
	"boxbot/internal/domain/repository"
	mockRepo "boxbot/internal/mocks/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAccountService_Get(t *testing.T) {
	t.Run("existing account", func(t *testing.T) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		svc := NewAccountService(accountRepo, newDiscardLogger())

		expected := testAccount(entity.ConsentGranted)
		accountRepo.EXPECT().
			FindByTelegramID(mock.Anything, testTelegramID).
			Return(expected, nil)

		account, err := svc.Get(context.Background(), testTelegramID)
		require.NoError(t, err)
		assert.Same(t, expected, account)
	})

	t.Run("unknown account", func(t *testing.T) {
		accountRepo := mockRepo.NewMockAccountRepository(t)
		svc := NewAccountService(accountRepo, newDiscardLogger())

		accountRepo.EXPECT().
			FindByTelegramID(mock.Anything, testTelegramID).
			Return(nil, repository.ErrAccountNotFound)

		account, err := svc.Get(context.Background(), testTelegramID)
		assert.ErrorIs(t, err, domainerrors.ErrNotInitialized)
		assert.Nil(t, account)
	})
}

func TestAccountService_Register_NewAccount(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	svc := NewAccountService(accountRepo, newDiscardLogger())

	accountRepo.EXPECT().
		FindByTelegramID(mock.Anything, testTelegramID).
		Return(nil, repository.ErrAccountNotFound)
	accountRepo.EXPECT().
		Create(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, testTelegramID, account.TelegramID)
			assert.Equal(t, testPhone, account.PhoneNumber)
			// New accounts start with geocheck and notifications on and
			// an undecided consent.
			assert.True(t, account.Preferences.GeocheckEnabled)
			assert.True(t, account.Preferences.Notifications)
			assert.Equal(t, entity.ConsentUnset, account.Consent)
		}).
		Return(nil)

	account, err := svc.Register(context.Background(), testTelegramID, testPhone)
	require.NoError(t, err)
	assert.Equal(t, testPhone, account.PhoneNumber)
}

func TestAccountService_Register_ReplacesPhoneNumber(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	svc := NewAccountService(accountRepo, newDiscardLogger())

	existing := testAccount(entity.ConsentGranted)
	existing.Preferences.DefaultMachine = "KRA01M"

	accountRepo.EXPECT().
		FindByTelegramID(mock.Anything, testTelegramID).
		Return(existing, nil)
	accountRepo.EXPECT().
		Update(mock.Anything, mock.AnythingOfType("*entity.Account")).
		Run(func(_ context.Context, account *entity.Account) {
			assert.Equal(t, "987654321", account.PhoneNumber)
			// Re-initialization keeps everything but the number.
			assert.Equal(t, "KRA01M", account.Preferences.DefaultMachine)
			assert.Equal(t, entity.ConsentGranted, account.Consent)
		}).
		Return(nil)

	account, err := svc.Register(context.Background(), testTelegramID, "987654321")
	require.NoError(t, err)
	assert.Equal(t, "987654321", account.PhoneNumber)
}

func TestAccountService_PreferenceToggles(t *testing.T) {
	tests := []struct {
		name   string
		invoke func(context.Context, *accountService) error
		verify func(*testing.T, entity.Preferences)
	}{
		{
			name: "geocheck off",
			invoke: func(ctx context.Context, svc *accountService) error {
				return svc.SetGeocheck(ctx, testTelegramID, false)
			},
			verify: func(t *testing.T, prefs entity.Preferences) {
				assert.False(t, prefs.GeocheckEnabled)
				assert.True(t, prefs.Notifications)
			},
		},
		{
			name: "notifications off",
			invoke: func(ctx context.Context, svc *accountService) error {
				return svc.SetNotifications(ctx, testTelegramID, false)
			},
			verify: func(t *testing.T, prefs entity.Preferences) {
				assert.False(t, prefs.Notifications)
				assert.True(t, prefs.GeocheckEnabled)
			},
		},
		{
			name: "default machine",
			invoke: func(ctx context.Context, svc *accountService) error {
				return svc.SetDefaultMachine(ctx, testTelegramID, "WAW07X")
			},
			verify: func(t *testing.T, prefs entity.Preferences) {
				assert.Equal(t, "WAW07X", prefs.DefaultMachine)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			accountRepo := mockRepo.NewMockAccountRepository(t)
			svc := NewAccountService(accountRepo, newDiscardLogger()).(*accountService)

			existing := testAccount(entity.ConsentGranted)
			existing.Preferences.Notifications = true

			accountRepo.EXPECT().
				FindByTelegramID(mock.Anything, testTelegramID).
				Return(existing, nil)
			accountRepo.EXPECT().
				UpdatePreferences(mock.Anything, testTelegramID, mock.AnythingOfType("entity.Preferences")).
				Run(func(_ context.Context, _ int64, prefs entity.Preferences) {
					tt.verify(t, prefs)
				}).
				Return(nil)

			require.NoError(t, tt.invoke(context.Background(), svc))
		})
	}
}

func TestAccountService_SetGeocheck_UnknownAccount(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	svc := NewAccountService(accountRepo, newDiscardLogger())

	accountRepo.EXPECT().
		FindByTelegramID(mock.Anything, testTelegramID).
		Return(nil, repository.ErrAccountNotFound)

	err := svc.SetGeocheck(context.Background(), testTelegramID, true)
	assert.ErrorIs(t, err, domainerrors.ErrNotInitialized)
}

func TestAccountService_RegisterDevice(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	svc := NewAccountService(accountRepo, newDiscardLogger())

	accountRepo.EXPECT().
		SetDeviceToken(mock.Anything, testTelegramID, "fcm-token").
		Return(nil)

	require.NoError(t, svc.RegisterDevice(context.Background(), testTelegramID, "fcm-token"))
}

func TestAccountService_RegisterDevice_UnknownAccount(t *testing.T) {
	accountRepo := mockRepo.NewMockAccountRepository(t)
	svc := NewAccountService(accountRepo, newDiscardLogger())

	accountRepo.EXPECT().
		SetDeviceToken(mock.Anything, testTelegramID, "fcm-token").
		Return(repository.ErrAccountNotFound)

	err := svc.RegisterDevice(context.Background(), testTelegramID, "fcm-token")
	assert.ErrorIs(t, err, domainerrors.ErrNotInitialized)
}
