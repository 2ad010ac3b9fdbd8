package main

import "github.com/urfave/cli/v2"

func (s *srv) loadApp() {
	s.app = cli.NewApp()
	s.app.Action = cli.ShowAppHelp
	s.app.Name = "Tavernsheet"
	s.app.Usage = ""
	s.app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the api service",
			Category:    "Api",
			Description: `Used for start service api, it main service included all apis.`,
		},
		{
			Action:   server.migrate,
			Name:     "migrate",
			Usage:    "Migrate the database schema",
			Category: "Database",
			Flags: []cli.Flag{
				&cli.StringFlag{
					Name:  "version",
					Usage: "The migration version to run, or \"auto\" for auto-migration",
					Value: "auto",
				},
			},
			Description: `Used to migrate the database to a given version.`,
		},
		{
			Action:      server.seed,
			Name:        "seed",
			Usage:       "Seed the reference data",
			Category:    "Database",
			Description: `Used to insert the default races, classes, backgrounds, skills, feats, spells, and equipment.`,
		},
	}
}
