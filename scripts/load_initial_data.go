package main

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"compliance-portal-backend/internal/config"
	"compliance-portal-backend/internal/database"
	"compliance-portal-backend/internal/database/models"

	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type CompanyData struct {
	Name         string `yaml:"name"`
	ABN          string `yaml:"abn,omitempty"`
	ContactEmail string `yaml:"contact_email"`
	Phone        string `yaml:"phone,omitempty"`
	Plan         string `yaml:"plan,omitempty"`
}

type UserData struct {
	CompanyName string `yaml:"company_name"`
	Email       string `yaml:"email"`
	Password    string `yaml:"password"`
	FirstName   string `yaml:"first_name"`
	LastName    string `yaml:"last_name"`
	Role        string `yaml:"role"`
}

type TemplateData struct {
	CompanyName string             `yaml:"company_name"`
	Name        string             `yaml:"name"`
	Lines       []TemplateLineData `yaml:"lines"`
}

type TemplateLineData struct {
	CoverageType  string `yaml:"coverage_type"`
	MinimumAmount int64  `yaml:"minimum_amount"`
	Mandatory     bool   `yaml:"mandatory"`
}

type SubcontractorData struct {
	CompanyName  string `yaml:"company_name"`
	BusinessName string `yaml:"business_name"`
	ABN          string `yaml:"abn"`
	Trade        string `yaml:"trade,omitempty"`
	ContactName  string `yaml:"contact_name,omitempty"`
	ContactEmail string `yaml:"contact_email,omitempty"`
	ContactPhone string `yaml:"contact_phone,omitempty"`
}

type ProjectData struct {
	CompanyName    string   `yaml:"company_name"`
	Name           string   `yaml:"name"`
	Address        string   `yaml:"address,omitempty"`
	Status         string   `yaml:"status,omitempty"`
	TemplateName   string   `yaml:"template_name,omitempty"`
	Subcontractors []string `yaml:"subcontractors,omitempty"`
}

type CompaniesFile struct {
	Companies []CompanyData `yaml:"companies"`
}

type UsersFile struct {
	Users []UserData `yaml:"users"`
}

type TemplatesFile struct {
	Templates []TemplateData `yaml:"templates"`
}

type SubcontractorsFile struct {
	Subcontractors []SubcontractorData `yaml:"subcontractors"`
}

type ProjectsFile struct {
	Projects []ProjectData `yaml:"projects"`
}

func main() {
	log.Println("Loading initial data from YAML files...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("Initial data loaded successfully")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	companies, err := loadYAMLSection[CompaniesFile](dataDir, "companies")
	if err != nil {
		return fmt.Errorf("failed to load companies: %w", err)
	}

	users, err := loadYAMLSection[UsersFile](dataDir, "users")
	if err != nil {
		return fmt.Errorf("failed to load users: %w", err)
	}

	templates, err := loadYAMLSection[TemplatesFile](dataDir, "templates")
	if err != nil {
		return fmt.Errorf("failed to load templates: %w", err)
	}

	subcontractors, err := loadYAMLSection[SubcontractorsFile](dataDir, "subcontractors")
	if err != nil {
		return fmt.Errorf("failed to load subcontractors: %w", err)
	}

	projects, err := loadYAMLSection[ProjectsFile](dataDir, "projects")
	if err != nil {
		return fmt.Errorf("failed to load projects: %w", err)
	}

	companyMap := make(map[string]*models.Company)
	companyCreated := 0
	for _, file := range companies {
		for _, data := range file.Companies {
			company, created, err := createCompany(db, data)
			if err != nil {
				return fmt.Errorf("failed to create company %s: %w", data.Name, err)
			}
			companyMap[data.Name] = company
			if created {
				companyCreated++
			}
		}
	}
	log.Printf("Companies: %d created", companyCreated)

	userCreated := 0
	for _, file := range users {
		for _, data := range file.Users {
			created, err := createUser(db, data, companyMap)
			if err != nil {
				return fmt.Errorf("failed to create user %s: %w", data.Email, err)
			}
			if created {
				userCreated++
			}
		}
	}
	log.Printf("Users: %d created", userCreated)

	templateMap := make(map[string]*models.RequirementTemplate)
	templateCreated := 0
	for _, file := range templates {
		for _, data := range file.Templates {
			template, created, err := createTemplate(db, data, companyMap)
			if err != nil {
				return fmt.Errorf("failed to create template %s: %w", data.Name, err)
			}
			templateMap[data.Name] = template
			if created {
				templateCreated++
			}
		}
	}
	log.Printf("Requirement templates: %d created", templateCreated)

	subMap := make(map[string]*models.Subcontractor)
	subCreated := 0
	for _, file := range subcontractors {
		for _, data := range file.Subcontractors {
			sub, created, err := createSubcontractor(db, data, companyMap)
			if err != nil {
				log.Printf("Warning: failed to create subcontractor %s: %v", data.BusinessName, err)
				continue
			}
			subMap[data.BusinessName] = sub
			if created {
				subCreated++
			}
		}
	}
	log.Printf("Subcontractors: %d created", subCreated)

	projectCreated := 0
	assignmentCreated := 0
	for _, file := range projects {
		for _, data := range file.Projects {
			project, created, err := createProject(db, data, companyMap)
			if err != nil {
				log.Printf("Warning: failed to create project %s: %v", data.Name, err)
				continue
			}
			if created {
				projectCreated++
			}

			if data.TemplateName != "" {
				if template, ok := templateMap[data.TemplateName]; ok {
					if err := applyTemplate(db, project, template); err != nil {
						log.Printf("Warning: failed to apply template to %s: %v", data.Name, err)
					}
				}
			}

			for _, subName := range data.Subcontractors {
				sub, ok := subMap[subName]
				if !ok {
					log.Printf("Warning: project %s references unknown subcontractor %s", data.Name, subName)
					continue
				}
				created, err := createAssignment(db, project, sub)
				if err != nil {
					log.Printf("Warning: failed to assign %s to %s: %v", subName, data.Name, err)
					continue
				}
				if created {
					assignmentCreated++
				}
			}
		}
	}
	log.Printf("Projects: %d created", projectCreated)
	log.Printf("Assignments: %d created", assignmentCreated)

	return nil
}

func loadYAMLSection[T any](dataDir, keyword string) ([]T, error) {
	var files []T

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(filepath.Base(path), keyword) {
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			var file T
			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}
			files = append(files, file)
		}
		return nil
	})

	return files, err
}

func createCompany(db *gorm.DB, data CompanyData) (*models.Company, bool, error) {
	var existing models.Company
	err := db.First(&existing, "name = ?", data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	plan := models.BillingPlan(data.Plan)
	if plan == "" {
		plan = models.BillingPlanTrial
	}

	company := &models.Company{
		Name:         data.Name,
		ABN:          strings.ReplaceAll(data.ABN, " ", ""),
		ContactEmail: data.ContactEmail,
		Phone:        data.Phone,
		Plan:         plan,
	}
	if err := db.Create(company).Error; err != nil {
		return nil, false, err
	}
	return company, true, nil
}

func createUser(db *gorm.DB, data UserData, companyMap map[string]*models.Company) (bool, error) {
	company, ok := companyMap[data.CompanyName]
	if !ok {
		return false, fmt.Errorf("unknown company %s", data.CompanyName)
	}

	var existing models.User
	err := db.First(&existing, "email = ?", data.Email).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(data.Password), bcrypt.DefaultCost)
	if err != nil {
		return false, err
	}

	user := &models.User{
		CompanyID:    company.ID,
		Email:        data.Email,
		PasswordHash: string(hash),
		FirstName:    data.FirstName,
		LastName:     data.LastName,
		Role:         models.UserRole(data.Role),
		Active:       true,
	}
	if err := db.Create(user).Error; err != nil {
		return false, err
	}
	return true, nil
}

func createTemplate(db *gorm.DB, data TemplateData, companyMap map[string]*models.Company) (*models.RequirementTemplate, bool, error) {
	company, ok := companyMap[data.CompanyName]
	if !ok {
		return nil, false, fmt.Errorf("unknown company %s", data.CompanyName)
	}

	var existing models.RequirementTemplate
	err := db.First(&existing, "company_id = ? AND name = ?", company.ID, data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	lines := make([]models.TemplateLine, 0, len(data.Lines))
	for _, line := range data.Lines {
		lines = append(lines, models.TemplateLine{
			CoverageType:  models.CoverageType(line.CoverageType),
			MinimumAmount: line.MinimumAmount,
			Mandatory:     line.Mandatory,
		})
	}
	raw, err := json.Marshal(lines)
	if err != nil {
		return nil, false, err
	}

	template := &models.RequirementTemplate{
		CompanyID: company.ID,
		Name:      data.Name,
		Lines:     raw,
	}
	if err := db.Create(template).Error; err != nil {
		return nil, false, err
	}
	return template, true, nil
}

func createSubcontractor(db *gorm.DB, data SubcontractorData, companyMap map[string]*models.Company) (*models.Subcontractor, bool, error) {
	company, ok := companyMap[data.CompanyName]
	if !ok {
		return nil, false, fmt.Errorf("unknown company %s", data.CompanyName)
	}

	abn := strings.ReplaceAll(data.ABN, " ", "")

	var existing models.Subcontractor
	err := db.First(&existing, "company_id = ? AND abn = ?", company.ID, abn).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	sub := &models.Subcontractor{
		CompanyID:    company.ID,
		BusinessName: data.BusinessName,
		ABN:          abn,
		Trade:        data.Trade,
		ContactName:  data.ContactName,
		ContactEmail: data.ContactEmail,
		ContactPhone: data.ContactPhone,
	}
	if err := db.Create(sub).Error; err != nil {
		return nil, false, err
	}
	return sub, true, nil
}

func createProject(db *gorm.DB, data ProjectData, companyMap map[string]*models.Company) (*models.Project, bool, error) {
	company, ok := companyMap[data.CompanyName]
	if !ok {
		return nil, false, fmt.Errorf("unknown company %s", data.CompanyName)
	}

	var existing models.Project
	err := db.First(&existing, "company_id = ? AND name = ?", company.ID, data.Name).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	status := models.ProjectStatus(data.Status)
	if status == "" {
		status = models.ProjectStatusActive
	}

	project := &models.Project{
		CompanyID: company.ID,
		Name:      data.Name,
		Address:   data.Address,
		Status:    status,
	}
	if err := db.Create(project).Error; err != nil {
		return nil, false, err
	}
	return project, true, nil
}

func applyTemplate(db *gorm.DB, project *models.Project, template *models.RequirementTemplate) error {
	var lines []models.TemplateLine
	if err := json.Unmarshal(template.Lines, &lines); err != nil {
		return err
	}

	for _, line := range lines {
		var count int64
		err := db.Model(&models.InsuranceRequirement{}).
			Where("project_id = ? AND coverage_type = ?", project.ID, line.CoverageType).
			Count(&count).Error
		if err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		requirement := &models.InsuranceRequirement{
			ProjectID:     project.ID,
			CoverageType:  line.CoverageType,
			MinimumAmount: line.MinimumAmount,
			Mandatory:     line.Mandatory,
		}
		if err := db.Create(requirement).Error; err != nil {
			return err
		}
	}
	return nil
}

func createAssignment(db *gorm.DB, project *models.Project, sub *models.Subcontractor) (bool, error) {
	var count int64
	err := db.Model(&models.ProjectSubcontractor{}).
		Where("project_id = ? AND subcontractor_id = ?", project.ID, sub.ID).
		Count(&count).Error
	if err != nil {
		return false, err
	}
	if count > 0 {
		return false, nil
	}

	assignment := &models.ProjectSubcontractor{
		ProjectID:       project.ID,
		SubcontractorID: sub.ID,
		Status:          models.ComplianceStatusPending,
		TradeOnSite:     sub.Trade,
	}
	if err := db.Create(assignment).Error; err != nil {
		return false, err
	}
	return true, nil
}
