package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	dmMocks "cabwise/infras/distancematrix/mocks"
	"cabwise/infras/otel/mocks"
	"cabwise/internal/domains/distance/model"
	"cabwise/internal/domains/distance/service"
)

func TestDistanceService_Resolve(t *testing.T) {
	tests := []struct {
		name        string
		origin      string
		destination string
		setupMock   func(client *dmMocks.MockClient)
		want        model.Result
	}{
		{
			name:        "remote lookup succeeds",
			origin:      "Basavanagudi",
			destination: "Whitefield",
			setupMock: func(client *dmMocks.MockClient) {
				client.EXPECT().
					DistanceMeters(gomock.Any(), "Basavanagudi", "Whitefield").
					Return(18750, nil)
			},
			want: model.Result{
				OK:         true,
				DistanceKm: 18.75,
				Source:     model.SourceDistanceMatrix,
			},
		},
		{
			name:        "remote failure falls back to coordinate table",
			origin:      "Basavanagudi",
			destination: "Indiranagar",
			setupMock: func(client *dmMocks.MockClient) {
				client.EXPECT().
					DistanceMeters(gomock.Any(), "Basavanagudi", "Indiranagar").
					Return(0, errors.New("connection refused"))
			},
			want: model.Result{
				OK:         false,
				DistanceKm: 7.7,
				Source:     model.SourceCoordinateTable,
				Err:        "connection refused",
			},
		},
		{
			name:        "coordinate lookup ignores case and spaces",
			origin:      "MG Road",
			destination: "ELECTRONIC CITY",
			setupMock: func(client *dmMocks.MockClient) {
				client.EXPECT().
					DistanceMeters(gomock.Any(), "MG Road", "ELECTRONIC CITY").
					Return(0, errors.New("timeout"))
			},
			want: model.Result{
				OK:         false,
				DistanceKm: 15.7,
				Source:     model.SourceCoordinateTable,
				Err:        "timeout",
			},
		},
		{
			name:        "unknown place falls back to default distance",
			origin:      "Basavanagudi",
			destination: "Mysore Palace",
			setupMock: func(client *dmMocks.MockClient) {
				client.EXPECT().
					DistanceMeters(gomock.Any(), "Basavanagudi", "Mysore Palace").
					Return(0, errors.New("timeout"))
			},
			want: model.Result{
				OK:         false,
				DistanceKm: model.DefaultDistanceKm,
				Source:     model.SourceDefault,
				Err:        "timeout",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockClient := dmMocks.NewMockClient(ctrl)
			tt.setupMock(mockClient)

			svc := service.New(mockClient, mocks.NewOtel())

			got := svc.Resolve(context.Background(), tt.origin, tt.destination)

			assert.Equal(t, tt.want.OK, got.OK)
			assert.Equal(t, tt.want.Source, got.Source)
			assert.Equal(t, tt.want.Err, got.Err)
			assert.InDelta(t, tt.want.DistanceKm, got.DistanceKm, 0.5)
		})
	}
}

func TestDistanceService_Lookup(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := dmMocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		DistanceMeters(gomock.Any(), "Basavanagudi", "Hebbal").
		Return(14345, nil)

	svc := service.New(mockClient, mocks.NewOtel())

	km, err := svc.Lookup(context.Background(), "Basavanagudi", "Hebbal")

	assert.NoError(t, err)
	assert.Equal(t, 14.35, km)
}

func TestDistanceService_LookupError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockClient := dmMocks.NewMockClient(ctrl)
	mockClient.EXPECT().
		DistanceMeters(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(0, errors.New("bad gateway"))

	svc := service.New(mockClient, mocks.NewOtel())

	_, err := svc.Lookup(context.Background(), "a", "b")

	assert.Error(t, err)
}
