package db_test

import (
	"database/sql"

	"tendersim/internal/db"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/DATA-DOG/go-sqlmock"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type Test struct {
	ID       uint `gorm:"primaryKey"`
	Username string
}

var _ = Describe("Database", func() {
	var (
		mock   sqlmock.Sqlmock
		mockDb *sql.DB
		err    error
		testDB *db.PostgresDB
	)

	BeforeEach(func() {
		mockDb, mock, err = sqlmock.New()
		Expect(err).NotTo(HaveOccurred())

		dialector := postgres.New(postgres.Config{
			Conn:       mockDb,
			DriverName: "postgres",
		})

		gormDB, err := gorm.Open(dialector, &gorm.Config{})
		Expect(err).NotTo(HaveOccurred())

		testDB = &db.PostgresDB{
			DB: gormDB,
		}
	})

	AfterEach(func() {
		mock.ExpectClose()
		Expect(mockDb.Close()).To(Succeed())
	})

	Describe("MigrateTable", func() {
		var err error

		BeforeEach(func() {
			mock.ExpectQuery(`SELECT.*FROM information_schema\.tables.*`).
				WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(0))

			mock.ExpectExec(`^CREATE TABLE \"tests\".*$`).
				WillReturnResult(sqlmock.NewResult(0, 1))
		})

		JustBeforeEach(func() {
			err = testDB.MigrateTable(&Test{})
		})

		It("should migrate the table successfully", func() {
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("SaveToTable", func() {
		When("the table is empty", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))

				mock.ExpectBegin()

				mock.ExpectQuery(`^INSERT INTO "tests" \("username","id"\) VALUES \(\$1,\$2\),\(\$3,\$4\) RETURNING "id"$`).
					WithArgs("Alice", 1, "Bob", 2).
					WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1).AddRow(2))

				mock.ExpectCommit()
			})

			It("should save records without errors", func() {
				err := testDB.SaveToTable(&[]Test{
					{ID: 1, Username: "Alice"},
					{ID: 2, Username: "Bob"},
				})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the table already holds records", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT count\(\*\) FROM "tests"`).
					WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))
			})

			It("should skip the insert", func() {
				err := testDB.SaveToTable(&[]Test{{ID: 1, Username: "Alice"}})
				Expect(err).NotTo(HaveOccurred())
				Expect(mock.ExpectationsWereMet()).To(Succeed())
			})
		})

		When("the argument is not a pointer to a slice", func() {
			It("should return an error", func() {
				err := testDB.SaveToTable(Test{ID: 1})
				Expect(err).To(MatchError(ContainSubstring("pointer to a slice")))
			})
		})
	})

	Describe("SaveRecord", func() {
		BeforeEach(func() {
			mock.ExpectBegin()

			mock.ExpectExec(`^UPDATE "tests" SET "username"=\$1 WHERE "id" = \$2$`).
				WithArgs("Alice", 1).
				WillReturnResult(sqlmock.NewResult(0, 1))

			mock.ExpectCommit()
		})

		It("should upsert the record by primary key", func() {
			err := testDB.SaveRecord(&Test{ID: 1, Username: "Alice"})
			Expect(err).NotTo(HaveOccurred())
			Expect(mock.ExpectationsWereMet()).To(Succeed())
		})
	})

	Describe("GetOneBy", func() {
		When("the record exists", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT.*FROM "tests" WHERE username = \$1.*`).
					WithArgs("Alice", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}).AddRow(1, "Alice"))
			})

			It("should load it into the entity", func() {
				var entity Test
				err := testDB.GetOneBy("username", "Alice", &entity)

				Expect(err).NotTo(HaveOccurred())
				Expect(entity.ID).To(Equal(uint(1)))
				Expect(entity.Username).To(Equal("Alice"))
			})
		})

		When("the record does not exist", func() {
			BeforeEach(func() {
				mock.ExpectQuery(`SELECT.*FROM "tests" WHERE username = \$1.*`).
					WithArgs("Ghost", 1).
					WillReturnRows(sqlmock.NewRows([]string{"id", "username"}))
			})

			It("should return ErrNotFound", func() {
				var entity Test
				err := testDB.GetOneBy("username", "Ghost", &entity)

				Expect(err).To(MatchError(db.ErrNotFound))
			})
		})
	})
})
