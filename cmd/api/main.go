package main

import (
	"Blog_Hub/internal/config"
	"Blog_Hub/internal/model"
	"Blog_Hub/internal/pkg"
	"Blog_Hub/internal/repository/mysql"
	"Blog_Hub/internal/repository/redis"
	"Blog_Hub/internal/router"

	"github.com/sirupsen/logrus"
)

func main() {
	cfg := config.Load()
	pkg.SetJWTSecrets(cfg.AccessSecret, cfg.RefreshSecret)

	if err := mysql.InitDB(cfg.MySQLDSN); err != nil {
		logrus.WithError(err).Fatal("mysql init failed")
	}

	if err := redis.Init(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB); err != nil {
		logrus.WithError(err).Fatal("redis init failed")
	}
	defer redis.Close()

	// auto migration is fine at this stage
	if err := mysql.DB.AutoMigrate(
		&model.User{},
		&model.Group{},
		&model.Post{},
		&model.Comment{},
		&model.Follow{},
	); err != nil {
		logrus.WithError(err).Fatal("migration failed")
	}

	var producer *pkg.KafkaProducer
	if brokers := cfg.BrokerList(); len(brokers) > 0 {
		var err error
		producer, err = pkg.NewKafkaProducer(pkg.KafkaConfig{Brokers: brokers, Topic: cfg.KafkaTopic})
		if err != nil {
			logrus.WithError(err).Fatal("kafka producer init failed")
		}
		defer producer.Close()
	}

	r := router.InitRouter(cfg, producer)
	logrus.WithField("addr", cfg.HTTPAddr).Info("listening")
	if err := r.Run(cfg.HTTPAddr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
