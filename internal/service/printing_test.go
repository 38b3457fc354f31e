package service_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	"drawer-cabinet/internal/cabinet"
	"drawer-cabinet/internal/service"
	svcmocks "drawer-cabinet/internal/service/mocks"
	"drawer-cabinet/internal/storage"
	"drawer-cabinet/internal/storage/mocks"
)

type printDeps struct {
	layout  *svcmocks.MockLayoutService
	configs *mocks.MockPrinterConfigStore
	printer *svcmocks.MockLabelPrinter
}

func newPrintService(t *testing.T) (service.PrintService, printDeps) {
	ctrl := gomock.NewController(t)
	deps := printDeps{
		layout:  svcmocks.NewMockLayoutService(ctrl),
		configs: mocks.NewMockPrinterConfigStore(ctrl),
		printer: svcmocks.NewMockLabelPrinter(ctrl),
	}
	return service.NewPrintService(deps.layout, deps.configs, deps.printer), deps
}

var realPrinter = storage.PrinterConfig{CUPSServer: "cups.local:631", QueueName: "labels"}

func TestPrintService_Print(t *testing.T) {
	named, _ := cabinet.NewDrawer("A", 1, cabinet.Medium)
	named = named.WithName("Resistors")

	tests := []struct {
		name      string
		req       service.PrintRequest
		mockSetup func(printDeps)
		wantText  string
		wantErr   func(error) bool
	}{
		{
			name: "virtual printing returns a preview",
			req:  service.PrintRequest{Text: " hello "},
			mockSetup: func(d printDeps) {
				d.configs.EXPECT().Get(gomock.Any()).Return(storage.PrinterConfig{VirtualPrinting: true}, nil)
			},
			wantText: "hello",
		},
		{
			name: "drawer label uses the name",
			req:  service.PrintRequest{DrawerID: "A1", Text: "ignored"},
			mockSetup: func(d printDeps) {
				d.layout.EXPECT().Get(gomock.Any(), "A1").Return(named, nil)
				d.configs.EXPECT().Get(gomock.Any()).Return(realPrinter, nil)
				d.printer.EXPECT().Check(gomock.Any(), "cups.local:631", "labels").Return(nil)
				d.printer.EXPECT().Print(gomock.Any(), "cups.local:631", "labels", service.LabelJobName, "Resistors").Return(nil)
			},
			wantText: "Resistors",
		},
		{
			name: "unknown drawer",
			req:  service.PrintRequest{DrawerID: "A2"},
			mockSetup: func(d printDeps) {
				d.layout.EXPECT().Get(gomock.Any(), "A2").Return(cabinet.Drawer{}, service.ErrNotFound)
			},
			wantErr: func(err error) bool { return errors.Is(err, service.ErrNotFound) },
		},
		{
			name:      "empty text",
			req:       service.PrintRequest{Text: "   "},
			mockSetup: func(printDeps) {},
			wantErr: func(err error) bool {
				var v *service.ValidationError
				return errors.As(err, &v) && v.Field == "text"
			},
		},
		{
			name: "printer missing",
			req:  service.PrintRequest{Text: "x"},
			mockSetup: func(d printDeps) {
				d.configs.EXPECT().Get(gomock.Any()).Return(realPrinter, nil)
				d.printer.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bad status 404"))
			},
			wantErr: func(err error) bool { return errors.Is(err, service.ErrExternalService) },
		},
		{
			name: "print job refused",
			req:  service.PrintRequest{Text: "x"},
			mockSetup: func(d printDeps) {
				d.configs.EXPECT().Get(gomock.Any()).Return(realPrinter, nil)
				d.printer.EXPECT().Check(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				d.printer.EXPECT().Print(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(errors.New("bad status 500"))
			},
			wantErr: func(err error) bool { return errors.Is(err, service.ErrExternalService) },
		},
		{
			name: "real printing without a server",
			req:  service.PrintRequest{Text: "x"},
			mockSetup: func(d printDeps) {
				d.configs.EXPECT().Get(gomock.Any()).Return(storage.PrinterConfig{QueueName: "labels"}, nil)
			},
			wantErr: func(err error) bool {
				var v *service.ValidationError
				return errors.As(err, &v) && v.Field == "cups_server"
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newPrintService(t)
			tt.mockSetup(deps)

			res, err := svc.Print(context.Background(), tt.req)
			if tt.wantErr != nil {
				if !tt.wantErr(err) {
					t.Errorf("Print() error = %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Print() unexpected error: %v", err)
			}
			if res.Text != tt.wantText || res.JobID == "" {
				t.Errorf("Print() = %+v, want text %q and a job id", res, tt.wantText)
			}
		})
	}
}

func TestPrintService_SaveConfig(t *testing.T) {
	tests := []struct {
		name      string
		cfg       storage.PrinterConfig
		wantField string
	}{
		{"virtual only", storage.PrinterConfig{VirtualPrinting: true}, ""},
		{"real printer", realPrinter, ""},
		{"host without port", storage.PrinterConfig{CUPSServer: "cups", QueueName: "labels"}, ""},
		{"missing server", storage.PrinterConfig{QueueName: "labels"}, "cups_server"},
		{"url instead of host", storage.PrinterConfig{CUPSServer: "http://cups:631", QueueName: "labels"}, "cups_server"},
		{"port out of range", storage.PrinterConfig{CUPSServer: "cups:70000", QueueName: "labels"}, "cups_server"},
		{"missing queue", storage.PrinterConfig{CUPSServer: "cups:631"}, "queue_name"},
		{"queue with space", storage.PrinterConfig{CUPSServer: "cups:631", QueueName: "label printer"}, "queue_name"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, deps := newPrintService(t)
			if tt.wantField == "" {
				deps.configs.EXPECT().Save(gomock.Any(), tt.cfg).Return(nil)
				deps.configs.EXPECT().Get(gomock.Any()).Return(tt.cfg, nil)
			}

			_, err := svc.SaveConfig(context.Background(), tt.cfg)
			if tt.wantField == "" {
				if err != nil {
					t.Errorf("SaveConfig() unexpected error: %v", err)
				}
				return
			}
			var v *service.ValidationError
			if !errors.As(err, &v) || v.Field != tt.wantField {
				t.Errorf("SaveConfig() error = %v, want ValidationError on %s", err, tt.wantField)
			}
		})
	}
}
