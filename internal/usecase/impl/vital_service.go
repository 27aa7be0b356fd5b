// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"medops/config"
	deliverycontext "medops/internal/delivery/context"
	"medops/internal/domain/entity"
	domainerrors "medops/internal/domain/errors"
	"medops/internal/domain/repository"
	"medops/internal/domain/service"
	"medops/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultVitalPageSize = 100

// vitalService implements the VitalUsecase interface.
type vitalService struct {
	txManager        repository.TransactionManager
	vitalRepo        repository.VitalRepository
	assignmentRepo   repository.AssignmentRepository
	careRepo         repository.CareRepository
	notificationRepo repository.NotificationRepository
	eventPublisher   service.EventPublisher
	alerts           *config.AlertsConfig
	logger           *slog.Logger
}

// VitalServiceParams holds dependencies for vitalService, injected by Fx.
type VitalServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	VitalRepo        repository.VitalRepository
	AssignmentRepo   repository.AssignmentRepository
	CareRepo         repository.CareRepository
	NotificationRepo repository.NotificationRepository
	EventPublisher   service.EventPublisher
	Config           *config.Config
	Logger           *slog.Logger
}

// NewVitalService is the constructor for vitalService.
func NewVitalService(params VitalServiceParams) usecase.VitalUsecase {
	return &vitalService{
		txManager:        params.TxManager,
		vitalRepo:        params.VitalRepo,
		assignmentRepo:   params.AssignmentRepo,
		careRepo:         params.CareRepo,
		notificationRepo: params.NotificationRepo,
		eventPublisher:   params.EventPublisher,
		alerts:           params.Config.Alerts,
		logger:           params.Logger,
	}
}

func (srv *vitalService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// IngestBatch validates and stores a batch of readings atomically. Any invalid
// or unattributable item fails the whole batch and nothing is stored.
func (srv *vitalService) IngestBatch(ctx context.Context, input *usecase.IngestBatchInput) (*usecase.IngestBatchOutput, error) {
	if len(input.Readings) == 0 {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "batch contains no readings")
	}

	now := time.Now().UTC()
	readings := make([]*entity.VitalReading, 0, len(input.Readings))
	for i, item := range input.Readings {
		if !item.Type.IsValid() {
			return nil, domainerrors.ErrInvalidMeasurement.WithDetails(
				fmt.Sprintf("reading %d: unknown vital type %q", i, item.Type))
		}
		if err := item.Measurement.Validate(item.Type); err != nil {
			return nil, domainerrors.ErrInvalidMeasurement.WithDetails(
				fmt.Sprintf("reading %d: %s", i, err.Error()))
		}
		if item.CollectionTime.IsZero() {
			return nil, domainerrors.ErrValidationFailed.WithDetails(
				fmt.Sprintf("reading %d: collection time is required", i))
		}

		patientID, err := srv.resolvePatient(ctx, item)
		if err != nil {
			if errors.Is(err, domainerrors.ErrReadingUnattributed) {
				return nil, domainerrors.ErrReadingUnattributed.WithDetails(
					fmt.Sprintf("reading %d: device %s had no patient at %s",
						i, item.DeviceID, item.CollectionTime.UTC().Format(time.RFC3339)))
			}

			return nil, errors.Wrapf(err, "failed to attribute reading %d", i)
		}

		readings = append(readings, &entity.VitalReading{
			ID:             uuid.New(),
			DeviceID:       item.DeviceID,
			PatientID:      patientID,
			Type:           item.Type,
			Measurement:    item.Measurement,
			CollectionTime: item.CollectionTime.UTC(),
			ReceivedTime:   now,
		})
	}

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.NewVitalRepository().BatchCreate(ctx, readings); err != nil {
			return errors.Wrap(err, "failed to store readings")
		}

		return nil
	})
	if err != nil {
		srv.log(ctx).Error("Failed to ingest vitals batch", slog.Any("error", err), slog.Int("count", len(readings)))

		return nil, errors.Wrap(err, "failed to execute ingestion transaction")
	}
	srv.log(ctx).Info("Vitals batch stored", slog.Int("count", len(readings)))

	// Alerting happens after the batch is committed. A fanout failure must
	// not undo stored readings.
	for _, reading := range readings {
		if srv.isAbnormal(reading) {
			srv.publishVitalsAlert(ctx, reading)
		}
	}

	return &usecase.IngestBatchOutput{Readings: readings}, nil
}

// resolvePatient determines which patient a reading belongs to. An explicit
// assignment hint is trusted only when it matches the covering interval.
func (srv *vitalService) resolvePatient(ctx context.Context, item *usecase.IngestReadingInput) (uuid.UUID, error) {
	assignment, err := srv.assignmentRepo.FindCovering(ctx, item.DeviceID, item.CollectionTime)
	if err != nil {
		if errors.Is(err, repository.ErrAssignmentNotFound) {
			if item.AssignedUser != nil {
				return *item.AssignedUser, nil
			}

			return uuid.Nil, domainerrors.ErrReadingUnattributed
		}

		return uuid.Nil, errors.Wrap(err, "failed to find covering assignment")
	}

	if item.AssignedUser != nil && *item.AssignedUser != assignment.PatientID {
		srv.log(ctx).Warn("Reading hint disagrees with assignment interval",
			slog.Any("deviceID", item.DeviceID),
			slog.Any("hintedUser", *item.AssignedUser),
			slog.Any("assignedPatient", assignment.PatientID))
	}

	return assignment.PatientID, nil
}

// isAbnormal checks a stored reading against the configured thresholds.
// A zero threshold disables that check.
func (srv *vitalService) isAbnormal(reading *entity.VitalReading) bool {
	if srv.alerts == nil {
		return false
	}

	m := reading.Measurement
	switch reading.Type {
	case entity.VitalTemperature:
		if m.DegC == nil {
			return false
		}

		return (srv.alerts.TemperatureMaxC != 0 && *m.DegC > srv.alerts.TemperatureMaxC) ||
			(srv.alerts.TemperatureMinC != 0 && *m.DegC < srv.alerts.TemperatureMinC)
	case entity.VitalHeartRate:
		if m.BPM == nil {
			return false
		}

		return (srv.alerts.HeartRateMaxBPM != 0 && *m.BPM > srv.alerts.HeartRateMaxBPM) ||
			(srv.alerts.HeartRateMinBPM != 0 && *m.BPM < srv.alerts.HeartRateMinBPM)
	case entity.VitalBloodPressure:
		if m.Systolic == nil || m.Diastolic == nil {
			return false
		}

		return (srv.alerts.SystolicMax != 0 && *m.Systolic > srv.alerts.SystolicMax) ||
			(srv.alerts.DiastolicMax != 0 && *m.Diastolic > srv.alerts.DiastolicMax)
	case entity.VitalGlucoseLevel:
		if m.MgDl == nil {
			return false
		}

		return (srv.alerts.GlucoseMaxMgDl != 0 && *m.MgDl > srv.alerts.GlucoseMaxMgDl) ||
			(srv.alerts.GlucoseMinMgDl != 0 && *m.MgDl < srv.alerts.GlucoseMinMgDl)
	case entity.VitalOxygenSaturation:
		if m.Percentage == nil {
			return false
		}

		return srv.alerts.OxygenSaturationMin != 0 && *m.Percentage < srv.alerts.OxygenSaturationMin
	case entity.VitalWeight:
		return false
	default:
		return false
	}
}

// publishVitalsAlert records a notification for an abnormal reading and hands
// the fanout to the alert worker. Failures are logged, never propagated.
func (srv *vitalService) publishVitalsAlert(ctx context.Context, reading *entity.VitalReading) {
	careTeam, err := srv.careRepo.FindCareTeam(ctx, reading.PatientID)
	if err != nil {
		srv.log(ctx).Error("Failed to resolve care team for alert",
			slog.Any("error", err), slog.Any("patientID", reading.PatientID))

		return
	}
	if len(careTeam) == 0 {
		srv.log(ctx).Warn("Abnormal reading has no care team to alert",
			slog.Any("patientID", reading.PatientID), slog.Any("readingID", reading.ID))

		return
	}

	notification := &entity.Notification{
		ID:        uuid.New(),
		Kind:      entity.NotificationVitalsAlert,
		SubjectID: reading.PatientID,
		Title:     "Abnormal vital reading",
		Body:      fmt.Sprintf("An abnormal %s reading was recorded at %s.", reading.Type, reading.CollectionTime.Format(time.RFC3339)),
	}
	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		srv.log(ctx).Error("Failed to record vitals alert notification",
			slog.Any("error", err), slog.Any("readingID", reading.ID))

		return
	}

	recipientIDs := make([]string, 0, len(careTeam))
	for _, clinician := range careTeam {
		recipientIDs = append(recipientIDs, clinician.ID.String())
	}

	event := &service.NotificationEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		NotificationID: notification.ID.String(),
		Type:           service.EventVitalsRecorded,
		SubjectID:      reading.PatientID.String(),
		Title:          notification.Title,
		Body:           notification.Body,
		RecipientIDs:   recipientIDs,
	}
	if err := srv.eventPublisher.PublishNotificationEvent(ctx, event); err != nil {
		srv.log(ctx).Error("Failed to publish vitals alert event",
			slog.Any("error", err), slog.Any("notificationID", notification.ID))

		return
	}
	srv.log(ctx).Info("Vitals alert published",
		slog.Any("notificationID", notification.ID),
		slog.Int("recipients", len(recipientIDs)))
}

// QueryReadings retrieves readings matching the filters, newest first. Results
// are scoped to what the requester may see.
func (srv *vitalService) QueryReadings(ctx context.Context, input *usecase.QueryVitalsInput) ([]*entity.VitalReading, error) {
	if input.PatientID == nil && input.DeviceID == nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, "a patient or device filter is required")
	}

	visible, err := srv.visiblePatients(ctx, input)
	if err != nil {
		return nil, err
	}

	from := input.From
	to := input.To
	if to.IsZero() {
		to = time.Now().UTC().Add(time.Second)
	}
	limit := input.Limit
	if limit <= 0 {
		limit = defaultVitalPageSize
	}

	var readings []*entity.VitalReading
	if input.PatientID != nil {
		readings, err = srv.vitalRepo.FindByPatient(ctx, *input.PatientID, from, to, limit, input.Offset)
	} else {
		readings, err = srv.vitalRepo.FindByDevice(ctx, *input.DeviceID, from, to, limit, input.Offset)
	}
	if err != nil {
		srv.log(ctx).Error("Failed to query readings", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to query readings")
	}

	filtered := make([]*entity.VitalReading, 0, len(readings))
	for _, reading := range readings {
		if input.Type != nil && reading.Type != *input.Type {
			continue
		}
		if input.PatientID != nil && input.DeviceID != nil && reading.DeviceID != *input.DeviceID {
			continue
		}
		if visible != nil {
			if _, ok := visible[reading.PatientID]; !ok {
				continue
			}
		}
		filtered = append(filtered, reading)
	}

	return filtered, nil
}

// visiblePatients determines whose readings the requester may see. A nil map
// means unrestricted. Patients are pinned to their own readings; clinicians
// to the patients under their care.
func (srv *vitalService) visiblePatients(ctx context.Context, input *usecase.QueryVitalsInput) (map[uuid.UUID]struct{}, error) {
	if input.RequesterRoles.Contains(entity.RoleAdmin) {
		return nil, nil
	}

	if input.RequesterRoles.Contains(entity.RoleClinician) {
		patients, err := srv.careRepo.FindPatients(ctx, input.RequesterID)
		if err != nil {
			srv.log(ctx).Error("Failed to resolve care-team patients", slog.Any("error", err), slog.Any("requesterID", input.RequesterID))

			return nil, errors.Wrap(err, "failed to resolve care-team patients")
		}

		visible := make(map[uuid.UUID]struct{}, len(patients))
		for _, patient := range patients {
			visible[patient.ID] = struct{}{}
		}
		if input.PatientID != nil {
			if _, ok := visible[*input.PatientID]; !ok {
				return nil, errors.Wrap(domainerrors.ErrForbidden, "patient is not under the requester's care")
			}
		}

		return visible, nil
	}

	// Patients, and any caller without a staff role, read only their own
	// readings. A device-only query is narrowed to the requester.
	if input.PatientID != nil && *input.PatientID != input.RequesterID {
		return nil, errors.Wrap(domainerrors.ErrForbidden, "patients may only read their own readings")
	}
	if input.PatientID == nil {
		requester := input.RequesterID
		input.PatientID = &requester
	}

	return map[uuid.UUID]struct{}{input.RequesterID: {}}, nil
}
