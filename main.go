package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/howeyc/gopass"
	"github.com/pborman/getopt"
	log "github.com/sirupsen/logrus"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/x/mongo/driver/connstring"

	"github.com/percona/pt-mongodb-slow-query-check/lib/config"
	"github.com/percona/pt-mongodb-slow-query-check/lib/versioncheck"
	"github.com/percona/pt-mongodb-slow-query-check/profiling"
	"github.com/percona/pt-mongodb-slow-query-check/report"
)

const (
	TOOLNAME = "pt-mongodb-slow-query-check"

	DEFAULT_MONGOURI = "mongodb://localhost:27017/test"
	DEFAULT_DATABASE = "test"
	DEFAULT_LOGLEVEL = "warn"
	DEFAULT_TIMEOUT  = 30 * time.Second
)

var (
	Build     string = "01-01-1980"
	GoVersion string = "1.18"
	Version   string = "1.0.0"
)

type cliOptions struct {
	Begin          bool
	Clean          bool
	Help           bool
	LogLevel       string
	MongoURI       string
	NoVersionCheck bool
	Password       string
	Report         bool
	ShowStats      bool
	User           string
	Version        bool
}

func main() {
	opts, err := getOptions()
	if err != nil {
		log.Errorf("error processing command line arguments: %s", err)
		os.Exit(1)
	}
	if opts == nil && err == nil { // --help
		return
	}

	logLevel, err := log.ParseLevel(opts.LogLevel)
	if err != nil {
		fmt.Printf("cannot set log level: %s\n", err.Error())
		os.Exit(1)
	}
	log.SetLevel(logLevel)

	if opts.Version {
		fmt.Println(TOOLNAME)
		fmt.Printf("Version %s\n", Version)
		fmt.Printf("Build: %s using %s\n", Build, GoVersion)
		return
	}

	if !opts.Begin && !opts.Report {
		log.Error("at least one of --begin or --report is required")
		getopt.PrintUsage(os.Stderr)
		os.Exit(1)
	}

	conf := config.DefaultConfig(TOOLNAME)
	if opts.MongoURI == DEFAULT_MONGOURI && conf.GetString("mongo-uri") != "" {
		opts.MongoURI = conf.GetString("mongo-uri")
	}

	if !conf.GetBool("no-version-check") && !opts.NoVersionCheck {
		advice, err := versioncheck.CheckUpdates(TOOLNAME, Version)
		if err != nil {
			log.Infof("cannot check version updates: %s", err.Error())
		} else if advice != "" {
			log.Warn(advice)
		}
	}

	database, err := databaseFromURI(opts.MongoURI)
	if err != nil {
		log.Errorf("invalid MongoDB URI %q: %s", opts.MongoURI, err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), DEFAULT_TIMEOUT)
	defer cancel()

	clientOptions := options.Client().ApplyURI(opts.MongoURI)
	if opts.User != "" {
		credential := options.Credential{Username: opts.User}
		if opts.Password != "" {
			credential.Password = opts.Password
			credential.PasswordSet = true
		}
		clientOptions.SetAuth(credential)
	}

	client, err := mongo.Connect(ctx, clientOptions)
	if err != nil {
		log.Errorf("cannot connect to %s: %s", opts.MongoURI, err)
		os.Exit(1)
	}
	defer client.Disconnect(ctx) // nolint:errcheck

	store := profiling.NewMongoStore(client, database)

	if opts.Begin {
		if err := profiling.Begin(ctx, store, opts.Clean); err != nil {
			log.Errorf("cannot enable profiling: %s", err)
			os.Exit(1)
		}
		fmt.Printf("Profiling enabled for the %s database\n", database)
		return
	}

	builder := report.Builder{ShowStats: opts.ShowStats}
	found, err := profiling.Report(ctx, store, builder, os.Stdout, opts.Clean)
	if err != nil {
		log.Errorf("cannot build the slow queries report: %s", err)
		os.Exit(1)
	}
	if found {
		// a finding is a normal outcome but CI pipelines need the gate to close
		os.Exit(1)
	}
}

func getOptions() (*cliOptions, error) {
	opts := &cliOptions{
		MongoURI: DEFAULT_MONGOURI,
		LogLevel: DEFAULT_LOGLEVEL,
	}

	gop := getopt.New()
	gop.BoolVarLong(&opts.Help, "help", '?', "Show help")
	gop.BoolVarLong(&opts.Version, "version", 'v', "Show version & exit")
	gop.BoolVarLong(&opts.NoVersionCheck, "no-version-check", 'c', "Default: Don't check for updates")
	gop.BoolVarLong(&opts.Begin, "begin", 'b', "Enable capture-all profiling before a test run")
	gop.BoolVarLong(&opts.Report, "report", 'r', "Report the slow queries profiled since --begin")
	gop.BoolVarLong(&opts.Clean, "clean", 0, "Reset the profiling level and drop the profiling log")
	gop.BoolVarLong(&opts.ShowStats, "stats", 's', "Append an execution time summary to the report")

	gop.StringVarLong(&opts.MongoURI, "mongo-uri", 'm', "MongoDB connection URI. Default: "+DEFAULT_MONGOURI)
	gop.StringVarLong(&opts.LogLevel, "log-level", 'l', "Log level: panic, fatal, error, warn, info, debug. Default: "+DEFAULT_LOGLEVEL)
	gop.StringVarLong(&opts.User, "username", 'u', "Username to use for optional MongoDB authentication")
	gop.StringVarLong(&opts.Password, "password", 'p', "Password to use for optional MongoDB authentication").SetOptional()

	gop.Parse(os.Args)
	if opts.Help {
		gop.PrintUsage(os.Stdout)
		return nil, nil
	}

	if gop.IsSet("password") && opts.Password == "" {
		print("Password: ")
		pass, err := gopass.GetPasswd()
		if err != nil {
			return nil, err
		}
		opts.Password = string(pass)
	}

	return opts, nil
}

// databaseFromURI returns the database the URI points at, falling back to
// the default when the URI has no path component.
func databaseFromURI(uri string) (string, error) {
	cs, err := connstring.ParseAndValidate(uri)
	if err != nil {
		return "", err
	}
	if cs.Database == "" {
		return DEFAULT_DATABASE, nil
	}
	return cs.Database, nil
}
