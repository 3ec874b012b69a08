// Package config provides configuration parsing for fluentdom projects.
//
// The configuration is stored in fluentdom.json at the project root.
// This package handles loading, saving, and validating configuration.
//
// # Configuration File Structure
//
//	{
//	  "name": "my-gallery",
//	  "title": "My Gallery",
//	  "dev": {
//	    "port": 8420,
//	    "host": "localhost",
//	    "watch": ["static"],
//	    "ignore": ["dist", ".git"],
//	    "hotReload": true
//	  },
//	  "static": {
//	    "dir": "static",
//	    "route": "/static"
//	  },
//	  "snapshot": {
//	    "output": "dist",
//	    "s3": {
//	      "bucket": "my-snapshots",
//	      "prefix": "gallery",
//	      "region": "us-east-1"
//	    }
//	  }
//	}
//
// # Usage
//
//	cfg, err := config.Load(".")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	fmt.Println("Port:", cfg.Dev.Port)
package config
