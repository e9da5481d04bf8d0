package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"time"

	"code.cloudfoundry.org/cf-networking-helpers/db"
	"code.cloudfoundry.org/cf-networking-helpers/httperror"
	"code.cloudfoundry.org/cf-networking-helpers/json_client"
	"code.cloudfoundry.org/cf-networking-helpers/marshal"
	"code.cloudfoundry.org/cf-networking-helpers/metrics"
	"code.cloudfoundry.org/cf-networking-helpers/middleware"
	middlewareAdapter "code.cloudfoundry.org/cf-networking-helpers/middleware/adapter"
	"code.cloudfoundry.org/debugserver"
	"code.cloudfoundry.org/lager/v3"
	"code.cloudfoundry.org/lager/v3/lagerflags"
	"code.cloudfoundry.org/service-instance-manager/api"
	"code.cloudfoundry.org/service-instance-manager/catalog"
	"code.cloudfoundry.org/service-instance-manager/cc_client"
	"code.cloudfoundry.org/service-instance-manager/config"
	"code.cloudfoundry.org/service-instance-manager/credentials"
	"code.cloudfoundry.org/service-instance-manager/events"
	"code.cloudfoundry.org/service-instance-manager/gateway"
	"code.cloudfoundry.org/service-instance-manager/handlers"
	"code.cloudfoundry.org/service-instance-manager/lifecycle"
	"code.cloudfoundry.org/service-instance-manager/store"
	"code.cloudfoundry.org/service-instance-manager/store/migrations"
	"code.cloudfoundry.org/service-instance-manager/uaa_client"
	"github.com/cloudfoundry/dropsonde"
	"github.com/tedsuo/ifrit"
	"github.com/tedsuo/ifrit/grouper"
	"github.com/tedsuo/ifrit/http_server"
	"github.com/tedsuo/ifrit/sigmon"
	"github.com/tedsuo/rata"
)

const (
	jobPrefix       = "service-instance-manager"
	dropsondeOrigin = "service-instance-manager"
)

var (
	logPrefix = "cloud_controller"
)

func main() {
	configFilePath := flag.String("config-file", "", "path to config file")
	flag.Parse()

	conf, err := config.New(*configFilePath)
	if err != nil {
		log.Fatalf("%s.%s: could not read config file: %s", logPrefix, jobPrefix, err)
	}

	if conf.LogPrefix != "" {
		logPrefix = conf.LogPrefix
	}
	loggerConfig := lagerflags.DefaultLagerConfig()
	if conf.LogLevel != "" {
		loggerConfig.LogLevel = conf.LogLevel
	}
	logger, reconfigurableSink := lagerflags.NewFromConfig(fmt.Sprintf("%s.%s", logPrefix, jobPrefix), loggerConfig)

	httpClient := &http.Client{
		Timeout: 30 * time.Second,
	}

	uaaClient := &uaa_client.Client{
		BaseURL:    fmt.Sprintf("%s:%d", conf.UAAURL, conf.UAAPort),
		Name:       conf.UAAClient,
		Secret:     conf.UAAClientSecret,
		HTTPClient: httpClient,
		Logger:     logger,
	}

	ccClient := &cc_client.Client{
		JSONClient: json_client.New(logger.Session("cc-json-client"), httpClient, conf.CCURL),
		Logger:     logger,
	}

	connectionPool, err := db.NewConnectionPool(
		conf.Database,
		conf.MaxOpenConnections,
		conf.MaxIdleConnections,
		time.Duration(conf.MaxConnectionsLifetimeSeconds)*time.Second,
		logPrefix,
		jobPrefix,
		logger,
	)
	if err != nil {
		log.Fatalf("%s.%s: db connect: %s", logPrefix, jobPrefix, err)
	}

	migrator := migrations.NewMigrator()
	numMigrations, err := migrator.PerformMigrations(connectionPool.DriverName(), connectionPool)
	if err != nil {
		log.Fatalf("%s.%s: perform migrations: %s", logPrefix, jobPrefix, err)
	}
	logger.Info("db-migrations-complete", lager.Data{"num-migrations-completed": numMigrations})

	instanceStore := store.New(connectionPool, &store.InstanceTable{}, &store.BindingTable{})

	metricsSender := &metrics.MetricsSender{
		Logger: logger.Session("time-metric-emitter"),
	}

	errorResponse := &httperror.ErrorResponse{
		MetricsSender: metricsSender,
	}

	planCatalog := catalog.New(conf.Services)

	clientFactory := &gateway.Factory{
		Logger:        logger.Session("gateway-client-factory"),
		UploadURL:     conf.UploadURL,
		UploadToken:   conf.UploadToken,
		UploadTimeout: time.Duration(conf.UploadTimeoutSeconds) * time.Second,
	}

	coordinator := lifecycle.NewProvisioningCoordinator(
		clientFactory,
		credentials.NewCodec(),
		logger.Session("provisioning-coordinator"),
	)

	eventRecorder := events.NewRecorder(logger.Session("event-recorder"), metricsSender)

	guidGenerator := &lifecycle.UUIDGenerator{}

	creator := &lifecycle.Creator{
		Store:       instanceStore,
		Coordinator: coordinator,
		QuotaGuard:  lifecycle.NewQuotaGuard(),
		Events:      eventRecorder,
		GUIDs:       guidGenerator,
		Logger:      logger,
	}

	destroyer := &lifecycle.Destroyer{
		Store:       instanceStore,
		Coordinator: coordinator,
		Plans:       planCatalog,
		Events:      eventRecorder,
		Logger:      logger,
	}

	attacher := &lifecycle.BindingAttacher{
		Store:     instanceStore,
		Validator: lifecycle.NewBindingValidator(),
		GUIDs:     guidGenerator,
		Logger:    logger,
	}

	summaryMapper := api.NewSummaryMapper(marshal.MarshalFunc(json.Marshal), instanceStore)

	createInstanceHandler := &handlers.InstancesCreate{
		Creator:       creator,
		Spaces:        ccClient,
		Tokens:        uaaClient,
		Plans:         planCatalog,
		Marshaler:     marshal.MarshalFunc(json.Marshal),
		Unmarshaler:   marshal.UnmarshalFunc(json.Unmarshal),
		ErrorResponse: errorResponse,
	}

	deleteInstanceHandler := &handlers.InstancesDelete{
		Destroyer:     destroyer,
		ErrorResponse: errorResponse,
	}

	instanceSummaryHandler := &handlers.InstanceSummary{
		Store:         instanceStore,
		Plans:         planCatalog,
		Mapper:        summaryMapper,
		ErrorResponse: errorResponse,
	}

	createBindingHandler := &handlers.BindingsCreate{
		Store:         instanceStore,
		Attacher:      attacher,
		Marshaler:     marshal.MarshalFunc(json.Marshal),
		Unmarshaler:   marshal.UnmarshalFunc(json.Unmarshal),
		ErrorResponse: errorResponse,
	}

	healthHandler := handlers.NewHealth(instanceStore, errorResponse)

	uptimeHandler := &handlers.UptimeHandler{
		StartTime: time.Now(),
	}

	metricsWrap := func(name string, handler http.Handler) http.Handler {
		metricsWrapper := middleware.MetricWrapper{
			Name:          name,
			MetricsSender: metricsSender,
		}
		return metricsWrapper.Wrap(handler)
	}

	logWrapper := middleware.LogWrapper{
		UUIDGenerator: &middlewareAdapter.UUIDAdapter{},
	}

	logWrap := func(handler http.Handler) http.Handler {
		return logWrapper.LogWrap(logger, handler)
	}

	authWrap := func(handler http.Handler) http.Handler {
		authenticator := handlers.Authenticator{
			Client:        uaaClient,
			Scopes:        []string{"cloud_controller.admin", "cloud_controller.write"},
			ErrorResponse: errorResponse,
			ScopeChecking: true,
		}
		return authenticator.Wrap(handler)
	}

	routes := rata.Routes{
		{Name: "uptime", Method: "GET", Path: "/"},
		{Name: "health", Method: "GET", Path: "/health"},
		{Name: "create_instance", Method: "POST", Path: "/v2/service_instances"},
		{Name: "delete_instance", Method: "DELETE", Path: "/v2/service_instances/:guid"},
		{Name: "instance_summary", Method: "GET", Path: "/v2/service_instances/:guid/summary"},
		{Name: "create_binding", Method: "POST", Path: "/v2/service_bindings"},
	}

	rataHandlers := rata.Handlers{
		"uptime":           metricsWrap("Uptime", logWrap(uptimeHandler)),
		"health":           metricsWrap("Health", logWrap(healthHandler)),
		"create_instance":  metricsWrap("CreateInstance", logWrap(authWrap(createInstanceHandler))),
		"delete_instance":  metricsWrap("DeleteInstance", logWrap(authWrap(deleteInstanceHandler))),
		"instance_summary": metricsWrap("InstanceSummary", logWrap(authWrap(instanceSummaryHandler))),
		"create_binding":   metricsWrap("CreateBinding", logWrap(authWrap(createBindingHandler))),
	}

	router, err := rata.NewRouter(routes, rataHandlers)
	if err != nil {
		log.Fatalf("%s.%s: creating router: %s", logPrefix, jobPrefix, err)
	}

	err = dropsonde.Initialize(conf.MetronAddress, dropsondeOrigin)
	if err != nil {
		log.Fatalf("%s.%s: initializing dropsonde: %s", logPrefix, jobPrefix, err)
	}

	server := http_server.New(fmt.Sprintf("%s:%d", conf.ListenHost, conf.ListenPort), router)
	debugServer := debugserver.Runner(fmt.Sprintf("%s:%d", conf.DebugServerHost, conf.DebugServerPort), reconfigurableSink)

	members := grouper.Members{
		{Name: "http_server", Runner: server},
		{Name: "debug-server", Runner: debugServer},
	}

	logger.Info("starting server", lager.Data{"listen-address": conf.ListenHost, "port": conf.ListenPort})

	group := grouper.NewOrdered(os.Interrupt, members)
	monitor := ifrit.Invoke(sigmon.New(group))

	err = <-monitor.Wait()
	if connectionPool != nil {
		connectionPool.Close()
	}
	if err != nil {
		logger.Error("exited-with-failure", err)
		os.Exit(1)
	}
}
